package stream

import "io"

// CountingWriter wraps an io.Writer and tracks the number of bytes written,
// giving corpus writers a tell() capability for recording line-start offsets
// on sinks that are not seekable files.
//
// For a compressing sink the reported position is the logical (uncompressed)
// position, not a byte offset into the compressed file.
type CountingWriter struct {
	w io.Writer
	n int64
}

// NewCountingWriter wraps w with a write-position counter starting at zero.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// Write writes p to the underlying writer and advances the position by the
// number of bytes actually written.
func (cw *CountingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)

	return n, err
}

// Tell returns the current write position.
func (cw *CountingWriter) Tell() int64 {
	return cw.n
}
