package stream

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// newGzipReader wraps r in a gzip decompressor. The gzip header is read
// eagerly, so a non-gzip stream fails here rather than on first Read.
func newGzipReader(r io.ReadCloser) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &compositeReadCloser{Reader: zr, closers: []io.Closer{zr, r}}, nil
}

// newGzipWriter wraps w in a gzip compressor at the default level.
func newGzipWriter(w io.WriteCloser) io.WriteCloser {
	zw := gzip.NewWriter(w)

	return &compositeWriteCloser{Writer: zw, closers: []io.Closer{zw, w}}
}
