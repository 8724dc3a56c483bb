package stream

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// newLZ4Reader wraps r in an LZ4 frame decompressor. The lz4.Reader has no
// resources of its own, so only the underlying reader needs closing.
func newLZ4Reader(r io.ReadCloser) io.ReadCloser {
	return &compositeReadCloser{Reader: lz4.NewReader(r), closers: []io.Closer{r}}
}

// newLZ4Writer wraps w in an LZ4 frame compressor.
func newLZ4Writer(w io.WriteCloser) io.WriteCloser {
	zw := lz4.NewWriter(w)

	return &compositeWriteCloser{Writer: zw, closers: []io.Closer{zw, w}}
}
