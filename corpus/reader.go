package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/corpuskit/mallet/errs"
	"github.com/corpuskit/mallet/internal/options"
	"github.com/corpuskit/mallet/stream"
)

const (
	defaultMaxLineBytes = 1024 * 1024
	scanBufferSize      = 64 * 1024
)

// Reader reads a corpus file in the Mallet instance format.
//
// The reader holds no open file between calls: every iteration, count, or
// offset lookup opens the source, reads, and releases it on all exit paths.
// Re-ranging an iterator therefore restarts from the top of the file.
//
// Blank lines are handled leniently: they are skipped by iteration and
// excluded from Count, so the two always agree, including for files with a
// trailing blank line.
type Reader struct {
	fname        string
	dict         Mapping
	maxLineBytes int
}

// ReaderOption is a functional option for configuring a Reader.
type ReaderOption = options.Option[*Reader]

// WithMaxLineBytes overrides the maximum accepted corpus line length in
// bytes (default 1 MiB). Lines beyond the limit abort iteration with
// bufio.ErrTooLong.
func WithMaxLineBytes(n int) ReaderOption {
	return options.New(func(r *Reader) error {
		if n <= 0 {
			return fmt.Errorf("max line bytes must be positive, got %d", n)
		}
		r.maxLineBytes = n

		return nil
	})
}

// NewReader creates a Reader over the named corpus file using dict to map
// tokens to ids. The file name's extension selects transparent decompression
// (see the stream package); compressed corpora support everything except
// offset-based random access.
//
// The dictionary is borrowed, never mutated, and remains caller-owned.
func NewReader(fname string, dict Mapping, opts ...ReaderOption) (*Reader, error) {
	if dict == nil {
		return nil, errs.ErrNilMapping
	}

	r := &Reader{
		fname:        fname,
		dict:         dict,
		maxLineBytes: defaultMaxLineBytes,
	}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Documents lazily iterates the corpus in file order, yielding one
// bag-of-words per non-blank line. A malformed line or I/O failure is
// yielded as the error value and ends the iteration; the caller decides
// whether to restart.
func (r *Reader) Documents() iter.Seq2[BagOfWords, error] {
	return func(yield func(BagOfWords, error) bool) {
		r.each(func(doc DocumentWithMeta, err error) bool {
			if err != nil {
				return yield(nil, err)
			}

			return yield(doc.BOW, nil)
		})
	}
}

// DocumentsWithMeta is the metadata-mode variant of Documents: each document
// arrives with the doc-id and label fields of its line.
func (r *Reader) DocumentsWithMeta() iter.Seq2[DocumentWithMeta, error] {
	return r.each
}

// newScanner builds a line scanner honoring the configured line limit. The
// initial buffer must not exceed the limit: bufio takes the larger of the two
// as the effective maximum.
func (r *Reader) newScanner(src io.Reader) *bufio.Scanner {
	bufSize := scanBufferSize
	if r.maxLineBytes < bufSize {
		bufSize = r.maxLineBytes
	}

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, bufSize), r.maxLineBytes)

	return sc
}

// each drives one full pass over the corpus, decoding every non-blank line.
func (r *Reader) each(yield func(DocumentWithMeta, error) bool) {
	src, err := stream.OpenReader(r.fname)
	if err != nil {
		yield(DocumentWithMeta{}, err)
		return
	}
	defer src.Close()

	sc := r.newScanner(src)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		doc, err := ParseLine(line, r.dict)
		if err != nil {
			yield(DocumentWithMeta{}, fmt.Errorf("line %d: %w", lineNo, err))
			return
		}

		if !yield(doc, nil) {
			return
		}
	}

	if err := sc.Err(); err != nil {
		yield(DocumentWithMeta{}, err)
	}
}

// Count returns the number of documents in the corpus without decoding them.
// It counts non-blank lines, so it always matches the number of documents
// Documents yields for a file it can iterate successfully.
func (r *Reader) Count() (int, error) {
	src, err := stream.OpenReader(r.fname)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	sc := r.newScanner(src)

	n := 0
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}

	if err := sc.Err(); err != nil {
		return 0, err
	}

	return n, nil
}

// DocumentAt returns the document whose line starts at the given byte offset.
//
// Precondition: offset must be a value previously returned by an encode of
// this file (Writer.Offsets or Serialize). A misaligned offset either fails
// with errs.ErrMalformedLine or silently decodes whatever text sits at that
// boundary; no recovery is attempted. Compressed corpora are rejected with
// errs.ErrNotSeekable.
func (r *Reader) DocumentAt(offset int64) (BagOfWords, error) {
	doc, err := r.DocumentWithMetaAt(offset)
	if err != nil {
		return nil, err
	}

	return doc.BOW, nil
}

// DocumentWithMetaAt is the metadata-mode variant of DocumentAt.
func (r *Reader) DocumentWithMetaAt(offset int64) (DocumentWithMeta, error) {
	if offset < 0 {
		return DocumentWithMeta{}, fmt.Errorf("%w: %d", errs.ErrNegativeOffset, offset)
	}

	src, err := stream.OpenReaderAt(r.fname)
	if err != nil {
		return DocumentWithMeta{}, err
	}
	defer src.Close()

	if _, err := src.Seek(offset, io.SeekStart); err != nil {
		return DocumentWithMeta{}, err
	}

	br := bufio.NewReaderSize(src, scanBufferSize)
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return DocumentWithMeta{}, err
	}

	return ParseLine(line, r.dict)
}
