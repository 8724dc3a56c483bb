package vocab

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/corpuskit/mallet/errs"
	"github.com/corpuskit/mallet/stream"
)

// checksumPrefix introduces the footer line carrying the xxHash64 of all
// entry lines. The '#' keeps the footer outside the id/token namespace.
const checksumPrefix = "#xxh64 "

// Save writes the dictionary to the named file: one "id<TAB>token" line per
// binding in ascending id order, followed by a checksum footer. The file
// name's extension selects transparent compression, mirroring corpus files.
func (d *Dictionary) Save(fname string) error {
	sink, err := stream.OpenWriter(fname)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(sink)
	digest := xxhash.New()

	for _, id := range d.IDs() {
		line := fmt.Sprintf("%d\t%s\n", id, d.id2token[id])
		// The digest cannot fail; the writer can.
		_, _ = digest.WriteString(line)
		if _, err := bw.WriteString(line); err != nil {
			sink.Close()
			return err
		}
	}

	if _, err := fmt.Fprintf(bw, "%s%016x\n", checksumPrefix, digest.Sum64()); err != nil {
		sink.Close()
		return err
	}

	if err := bw.Flush(); err != nil {
		sink.Close()
		return err
	}

	return sink.Close()
}

// Load reads a dictionary written by Save, verifying the checksum footer.
// A missing or unparsable footer yields errs.ErrMalformedDictionary; a
// footer that does not match the entries yields errs.ErrChecksumMismatch,
// the signal that the vocabulary no longer belongs to its corpus.
func Load(fname string) (*Dictionary, error) {
	src, err := stream.OpenReader(fname)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	d := New()
	digest := xxhash.New()
	sc := bufio.NewScanner(src)

	sawFooter := false
	var footer string
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, checksumPrefix) {
			footer = strings.TrimPrefix(line, checksumPrefix)
			sawFooter = true

			break
		}

		_, _ = digest.WriteString(line)
		_, _ = digest.WriteString("\n")

		idStr, token, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrMalformedDictionary, line)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, fmt.Errorf("%w: bad id %q", errs.ErrMalformedDictionary, idStr)
		}

		if err := d.Set(token, id); err != nil {
			return nil, err
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !sawFooter {
		return nil, fmt.Errorf("%w: missing checksum footer", errs.ErrMalformedDictionary)
	}

	sum, err := strconv.ParseUint(footer, 16, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad checksum %q", errs.ErrMalformedDictionary, footer)
	}

	if sum != digest.Sum64() {
		return nil, fmt.Errorf("%w: footer %016x, entries %016x", errs.ErrChecksumMismatch, sum, digest.Sum64())
	}

	return d, nil
}
