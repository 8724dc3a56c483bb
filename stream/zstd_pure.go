//go:build !gozstd || !cgo

package stream

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// newZstdReader wraps r in a pure-Go Zstandard decompressor.
//
// Single-threaded decoding keeps memory usage predictable for line-at-a-time
// corpus scanning, which never benefits from decoder concurrency.
func newZstdReader(r io.ReadCloser) (io.ReadCloser, error) {
	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	closeDecoder := closerFunc(func() error {
		zr.Close()
		return nil
	})

	return &compositeReadCloser{Reader: zr, closers: []io.Closer{closeDecoder, r}}, nil
}

// newZstdWriter wraps w in a pure-Go Zstandard compressor at the default level.
func newZstdWriter(w io.WriteCloser) io.WriteCloser {
	// Options are fixed, so NewWriter cannot fail.
	zw, _ := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))

	return &compositeWriteCloser{Writer: zw, closers: []io.Closer{zw, w}}
}
