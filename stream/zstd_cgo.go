//go:build gozstd && cgo

package stream

import (
	"io"

	"github.com/valyala/gozstd"
)

// newZstdReader wraps r in the cgo libzstd decompressor.
func newZstdReader(r io.ReadCloser) (io.ReadCloser, error) {
	zr := gozstd.NewReader(r)

	releaseReader := closerFunc(func() error {
		zr.Release()
		return nil
	})

	return &compositeReadCloser{Reader: zr, closers: []io.Closer{releaseReader, r}}, nil
}

// newZstdWriter wraps w in the cgo libzstd compressor at the default level.
func newZstdWriter(w io.WriteCloser) io.WriteCloser {
	zw := gozstd.NewWriter(w)

	closeWriter := closerFunc(func() error {
		err := zw.Close()
		zw.Release()

		return err
	})

	return &compositeWriteCloser{Writer: zw, closers: []io.Closer{closeWriter, w}}
}
