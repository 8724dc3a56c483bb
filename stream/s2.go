package stream

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// newS2Reader wraps r in an S2 decompressor. The s2.Reader has no resources
// of its own, so only the underlying reader needs closing.
func newS2Reader(r io.ReadCloser) io.ReadCloser {
	return &compositeReadCloser{Reader: s2.NewReader(r), closers: []io.Closer{r}}
}

// newS2Writer wraps w in an S2 compressor.
func newS2Writer(w io.WriteCloser) io.WriteCloser {
	zw := s2.NewWriter(w)

	return &compositeWriteCloser{Writer: zw, closers: []io.Closer{zw, w}}
}
