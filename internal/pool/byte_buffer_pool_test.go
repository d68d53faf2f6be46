package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBufferAppendPayload(t *testing.T) {
	bb := NewByteBuffer(16)

	off1 := bb.AppendPayload([]byte("hello"))
	assert.Equal(t, 0, off1)

	off2 := bb.AppendPayload([]byte("world"))
	assert.Equal(t, 5, off2)

	assert.Equal(t, []byte("helloworld"), bb.Bytes())
}

func TestByteBufferAppendZeroPadding(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.AppendPayload([]byte("ab"))
	bb.AppendZeroPadding(3)

	assert.Equal(t, []byte{'a', 'b', 0, 0, 0}, bb.Bytes())
}

func TestByteBufferReset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.AppendPayload([]byte("data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBufferWrite(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	var buf bytes.Buffer
	written, err := bb.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(5), written)
	assert.Equal(t, "hello", buf.String())
}

func TestByteBufferPoolReuse(t *testing.T) {
	pool := NewByteBufferPool(1024, 4096)

	bb := pool.Get()
	bb.AppendPayload([]byte("sensitive"))
	pool.Put(bb)

	bb2 := pool.Get()
	assert.Equal(t, 0, bb2.Len(), "buffer from pool must be reset")
}

func TestByteBufferPoolDiscardsOversized(t *testing.T) {
	pool := NewByteBufferPool(64, 128)

	bb := pool.Get()
	bb.AppendPayload(make([]byte, 256))
	pool.Put(bb)

	bb2 := pool.Get()
	assert.LessOrEqual(t, bb2.Cap(), 128, "oversized buffer should not be returned from the pool")
}

func TestGetPutBlock0Buffer(t *testing.T) {
	bb := GetBlock0Buffer()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, bb.Cap(), Block0DefaultSize)
	PutBlock0Buffer(bb)
}

func TestGetPutBlock1Buffer(t *testing.T) {
	bb := GetBlock1Buffer()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, bb.Cap(), Block1DefaultSize)
	PutBlock1Buffer(bb)
}

func TestPutNilBufferDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		PutBlock0Buffer(nil)
		PutBlock1Buffer(nil)
	})
}

func TestBlockPoolsIndependentSizes(t *testing.T) {
	b0 := GetBlock0Buffer()
	b1 := GetBlock1Buffer()

	assert.NotEqual(t, b0.Cap(), b1.Cap())

	PutBlock0Buffer(b0)
	PutBlock1Buffer(b1)
}

func TestByteBufferPoolConcurrentAccess(t *testing.T) {
	pool := NewByteBufferPool(1024, 1024*1024)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := pool.Get()
				bb.AppendPayload([]byte("concurrent"))
				pool.Put(bb)
			}
		}()
	}
	wg.Wait()
}
