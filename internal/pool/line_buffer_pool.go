package pool

import (
	"io"
	"strconv"
	"sync"
)

const (
	// LineBufferDefaultSize covers typical corpus lines without growth.
	LineBufferDefaultSize = 4 * 1024
	// LineBufferMaxThreshold caps what the pool retains; buffers grown past
	// this by a pathological document are dropped instead of pooled.
	LineBufferMaxThreshold = 1024 * 1024
)

// LineBuffer is a reusable byte buffer for rendering one corpus line.
type LineBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewLineBuffer creates a new LineBuffer with the given initial capacity.
func NewLineBuffer(size int) *LineBuffer {
	return &LineBuffer{B: make([]byte, 0, size)}
}

// Bytes returns the underlying byte slice.
func (lb *LineBuffer) Bytes() []byte {
	return lb.B
}

// Len returns the length of the buffer.
func (lb *LineBuffer) Len() int {
	return len(lb.B)
}

// Reset empties the buffer while retaining the allocated memory for reuse.
func (lb *LineBuffer) Reset() {
	lb.B = lb.B[:0]
}

// AppendByte appends a single byte.
func (lb *LineBuffer) AppendByte(b byte) {
	lb.B = append(lb.B, b)
}

// AppendString appends s.
func (lb *LineBuffer) AppendString(s string) {
	lb.B = append(lb.B, s...)
}

// AppendInt appends the decimal rendering of n.
func (lb *LineBuffer) AppendInt(n int) {
	lb.B = strconv.AppendInt(lb.B, int64(n), 10)
}

// WriteTo writes the buffer contents to w.
func (lb *LineBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(lb.B)
	return int64(n), err
}

var linePool = sync.Pool{
	New: func() any {
		return NewLineBuffer(LineBufferDefaultSize)
	},
}

// GetLineBuffer retrieves a LineBuffer from the pool.
func GetLineBuffer() *LineBuffer {
	lb, _ := linePool.Get().(*LineBuffer)
	return lb
}

// PutLineBuffer returns a LineBuffer to the pool for reuse.
func PutLineBuffer(lb *LineBuffer) {
	if lb == nil || cap(lb.B) > LineBufferMaxThreshold {
		return
	}

	lb.Reset()
	linePool.Put(lb)
}
