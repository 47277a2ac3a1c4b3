// Package pool provides pooled byte buffers for encoding responses.
package pool

import (
	"io"
	"sync"
)

const (
	// ResponseBufferDefaultSize is the initial capacity of a pooled response buffer.
	ResponseBufferDefaultSize = 1024 * 4 // 4KiB
	// ResponseBufferMaxThreshold is the largest capacity returned to the pool.
	ResponseBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is an append-only byte slice that implements io.Writer.
type ByteBuffer struct {
	B []byte
}

var (
	_ io.Writer   = (*ByteBuffer)(nil)
	_ io.WriterTo = (*ByteBuffer)(nil)
)

// NewByteBuffer creates an empty buffer with the given capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the buffered bytes. The slice is only valid until the buffer
// is reset or returned to its pool.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of buffered bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Write appends data. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffered bytes to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers. Buffers that grew beyond maxThreshold
// are dropped instead of pooled.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with capacity defaultSize.
// A maxThreshold of zero keeps every buffer.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and returns it to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var responsePool = NewByteBufferPool(ResponseBufferDefaultSize, ResponseBufferMaxThreshold)

// GetResponseBuffer returns a buffer from the shared response pool.
func GetResponseBuffer() *ByteBuffer {
	return responsePool.Get()
}

// PutResponseBuffer returns bb to the shared response pool.
func PutResponseBuffer(bb *ByteBuffer) {
	responsePool.Put(bb)
}
