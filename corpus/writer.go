package corpus

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/corpuskit/mallet/errs"
	"github.com/corpuskit/mallet/internal/options"
	"github.com/corpuskit/mallet/internal/pool"
	"github.com/corpuskit/mallet/stream"
)

// truncationTolerance bounds how far a count may sit from an integer before
// its truncation is tallied as a lossy event.
const truncationTolerance = 1e-6

// Writer streams bag-of-words documents to a sink in the Mallet instance
// format, recording the start offset of every written line.
//
// Offsets are logical positions relative to the writer's first write. For a
// freshly created, uncompressed file sink they are exact byte offsets usable
// with Reader.DocumentAt; for a compressing sink they index the uncompressed
// text and cannot seed random access.
//
// Note: The Writer is NOT thread-safe. Each instance should be used by a
// single goroutine at a time.
type Writer struct {
	cw        *stream.CountingWriter
	dict      Mapping
	logger    *slog.Logger
	offsets   []int64
	index     int
	truncated int
	closed    bool
}

// WriterOption is a functional option for configuring a Writer.
type WriterOption = options.Option[*Writer]

// WithLogger routes the writer's aggregate truncation warning to logger
// instead of slog.Default().
func WithLogger(logger *slog.Logger) WriterOption {
	return options.New(func(w *Writer) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		w.logger = logger

		return nil
	})
}

// NewWriter creates a Writer that appends Mallet-format lines to sink using
// dict to map ids back to tokens. The sink and dictionary remain
// caller-owned: Close never closes the sink, and dict is never mutated.
func NewWriter(sink io.Writer, dict Mapping, opts ...WriterOption) (*Writer, error) {
	if dict == nil {
		return nil, errs.ErrNilMapping
	}

	w := &Writer{
		cw:     stream.NewCountingWriter(sink),
		dict:   dict,
		logger: slog.Default(),
	}

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// WriteDocument writes one bare document. The line's doc-id is the zero-based
// write index and its label is UnknownLabel.
func (w *Writer) WriteDocument(bow BagOfWords) error {
	return w.write(bow, UnknownLabel)
}

// WriteDocumentWithMeta writes one document with metadata. The label comes
// from doc.Label (falling back to UnknownLabel when empty, since an empty
// field cannot survive the space-separated format); the written doc-id is
// still the zero-based write index, never doc.DocID.
func (w *Writer) WriteDocumentWithMeta(doc DocumentWithMeta) error {
	label := doc.Label
	if label == "" {
		label = UnknownLabel
	}

	return w.write(doc.BOW, label)
}

// write renders `<index> <label> <tok ...>\n` and appends it to the sink,
// recording the line's start offset. Each (id, count) pair emits its token
// count times, with count truncated toward zero; fractional counts beyond
// truncationTolerance are tallied for the aggregate warning in Close.
func (w *Writer) write(bow BagOfWords, label string) error {
	if w.closed {
		return errs.ErrWriterClosed
	}

	buf := pool.GetLineBuffer()
	defer pool.PutLineBuffer(buf)

	buf.AppendInt(w.index)
	buf.AppendByte(' ')
	buf.AppendString(label)
	buf.AppendByte(' ')

	truncated := 0
	first := true
	for _, p := range bow {
		tok, ok := w.dict.Token(p.ID)
		if !ok {
			return fmt.Errorf("%w: id %d", errs.ErrUnknownID, p.ID)
		}

		whole := math.Trunc(p.Count)
		if math.Abs(p.Count-whole) > truncationTolerance {
			truncated++
		}

		for i := 0; i < int(whole); i++ {
			if !first {
				buf.AppendByte(' ')
			}
			buf.AppendString(tok)
			first = false
		}
	}
	buf.AppendByte('\n')

	offset := w.cw.Tell()
	if _, err := buf.WriteTo(w.cw); err != nil {
		return err
	}

	w.offsets = append(w.offsets, offset)
	w.truncated += truncated
	w.index++

	return nil
}

// Offsets returns the start offset of every written line, in write order,
// one entry per document. The slice is owned by the writer and must not be
// modified.
func (w *Writer) Offsets() []int64 {
	return w.offsets
}

// Truncated returns the number of fractional counts truncated so far.
func (w *Writer) Truncated() int {
	return w.truncated
}

// Close finalizes the writer. If any fractional counts were truncated, one
// aggregate warning is logged for the whole encode, never per document.
// Close does not flush or close the underlying sink, which stays
// caller-owned. Closing twice is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.truncated > 0 {
		w.logger.Warn("mallet format can only save vectors with integer counts; fractional entries were truncated",
			slog.Int("truncated", w.truncated))
	}

	return nil
}

// Serialize writes docs to the named file in the Mallet instance format and
// returns the offset table. The file name's extension selects transparent
// compression (see the stream package); note that offsets into a compressed
// file cannot seed random access.
//
// Every document is written with label UnknownLabel. dict must resolve every
// id appearing in docs; use the vocab package to derive a dictionary when
// none exists.
func Serialize(fname string, docs []BagOfWords, dict Mapping, opts ...WriterOption) ([]int64, error) {
	return serialize(fname, dict, opts, func(w *Writer) error {
		for i, bow := range docs {
			if err := w.WriteDocument(bow); err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
		}

		return nil
	})
}

// SerializeWithMeta is the metadata-mode variant of Serialize: labels come
// from each document's Label field. Written doc-ids are still the zero-based
// sequence positions.
func SerializeWithMeta(fname string, docs []DocumentWithMeta, dict Mapping, opts ...WriterOption) ([]int64, error) {
	return serialize(fname, dict, opts, func(w *Writer) error {
		for i, doc := range docs {
			if err := w.WriteDocumentWithMeta(doc); err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
		}

		return nil
	})
}

func serialize(fname string, dict Mapping, opts []WriterOption, writeAll func(*Writer) error) ([]int64, error) {
	sink, err := stream.OpenWriter(fname)
	if err != nil {
		return nil, err
	}

	w, err := NewWriter(sink, dict, opts...)
	if err != nil {
		sink.Close()
		return nil, err
	}

	if err := writeAll(w); err != nil {
		sink.Close()
		return nil, err
	}

	if err := w.Close(); err != nil {
		sink.Close()
		return nil, err
	}

	if err := sink.Close(); err != nil {
		return nil, err
	}

	return w.Offsets(), nil
}
