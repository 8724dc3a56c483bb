package stream

import (
	"fmt"
	"io"
	"os"

	"github.com/corpuskit/mallet/errs"
	"github.com/corpuskit/mallet/format"
)

// OpenReader opens the named corpus file for reading, transparently
// decompressing it based on the file name extension (see format.DetectCompression).
//
// The returned reader owns the file handle; Close releases every resource
// acquired by this call.
func OpenReader(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	rc, err := WrapReader(f, format.DetectCompression(name))
	if err != nil {
		f.Close()
		return nil, err
	}

	return rc, nil
}

// OpenWriter creates (or truncates) the named corpus file for writing,
// transparently compressing it based on the file name extension.
//
// The returned writer owns the file handle; Close flushes the compression
// wrapper and then closes the file.
func OpenWriter(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}

	wc, err := WrapWriter(f, format.DetectCompression(name))
	if err != nil {
		f.Close()
		return nil, err
	}

	return wc, nil
}

// OpenReaderAt opens the named corpus file for random access.
//
// Compressed files carry no byte-addressable line starts, so any name with a
// recognized compression extension yields errs.ErrNotSeekable.
func OpenReaderAt(name string) (io.ReadSeekCloser, error) {
	if comp := format.DetectCompression(name); comp != format.CompressionNone {
		return nil, fmt.Errorf("%w: %s is %s-compressed", errs.ErrNotSeekable, name, comp)
	}

	return os.Open(name)
}

// WrapReader wraps r in a decompressing reader for the given compression type.
// Closing the result closes the wrapper first, then r.
func WrapReader(r io.ReadCloser, comp format.Compression) (io.ReadCloser, error) {
	switch comp {
	case format.CompressionNone:
		return r, nil
	case format.CompressionGzip:
		return newGzipReader(r)
	case format.CompressionZstd:
		return newZstdReader(r)
	case format.CompressionS2:
		return newS2Reader(r), nil
	case format.CompressionLZ4:
		return newLZ4Reader(r), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, comp)
	}
}

// WrapWriter wraps w in a compressing writer for the given compression type.
// Closing the result flushes and closes the wrapper first, then w.
func WrapWriter(w io.WriteCloser, comp format.Compression) (io.WriteCloser, error) {
	switch comp {
	case format.CompressionNone:
		return w, nil
	case format.CompressionGzip:
		return newGzipWriter(w), nil
	case format.CompressionZstd:
		return newZstdWriter(w), nil
	case format.CompressionS2:
		return newS2Writer(w), nil
	case format.CompressionLZ4:
		return newLZ4Writer(w), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, comp)
	}
}

// compositeReadCloser bundles a decompressing reader with the closers it
// depends on. Closers run in order; the first error wins.
type compositeReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *compositeReadCloser) Close() error {
	var first error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

type compositeWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (c *compositeWriteCloser) Close() error {
	var first error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// closerFunc adapts a plain function to io.Closer, for wrappers whose
// close/release methods do not match the interface.
type closerFunc func() error

func (f closerFunc) Close() error { return f() }
