// Package pool provides a pooled growable byte buffer the packer uses
// to accumulate a data block's stream payloads across repeated Pack
// calls without reallocating on every run.
package pool

import (
	"io"
	"sync"
)

// Block0DefaultSize and Block1DefaultSize size the buffers used to
// accumulate stream 0 (0x10-aligned) and stream 1 (0x80-aligned,
// texture pixel payloads — much larger) payloads respectively.
const (
	Block0DefaultSize  = 1024 * 64  // 64KiB: metadata/material/renderable streams
	Block0MaxThreshold = 1024 * 512 // 512KiB

	Block1DefaultSize  = 1024 * 1024 * 4  // 4MiB: compressed texture pixel payloads
	Block1MaxThreshold = 1024 * 1024 * 32 // 32MiB
)

// ByteBuffer is a growable byte slice wrapper sized for bulk appends of
// whole payloads followed by alignment padding, rather than small
// incremental writes.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer, retaining its capacity for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes currently held.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// AppendPayload appends data, growing the buffer if necessary, and
// returns the byte offset data was written at — the offset a
// ResourceEntry records before padding is applied.
func (bb *ByteBuffer) AppendPayload(data []byte) (offset int) {
	offset = len(bb.B)
	bb.B = append(bb.B, data...)
	return offset
}

// AppendZeroPadding appends n zero bytes.
func (bb *ByteBuffer) AppendZeroPadding(n int) {
	for i := 0; i < n; i++ {
		bb.B = append(bb.B, 0)
	}
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffer's contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffers of a given default size via sync.Pool,
// discarding buffers that grew past maxThreshold rather than returning
// them to the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize
// and are discarded (not retained) once they exceed maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
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

var (
	block0Pool = NewByteBufferPool(Block0DefaultSize, Block0MaxThreshold)
	block1Pool = NewByteBufferPool(Block1DefaultSize, Block1MaxThreshold)
)

// GetBlock0Buffer retrieves a buffer from the default block-0 pool.
func GetBlock0Buffer() *ByteBuffer { return block0Pool.Get() }

// PutBlock0Buffer returns a buffer to the default block-0 pool.
func PutBlock0Buffer(bb *ByteBuffer) { block0Pool.Put(bb) }

// GetBlock1Buffer retrieves a buffer from the default block-1 pool.
func GetBlock1Buffer() *ByteBuffer { return block1Pool.Get() }

// PutBlock1Buffer returns a buffer to the default block-1 pool.
func PutBlock1Buffer(bb *ByteBuffer) { block1Pool.Put(bb) }
