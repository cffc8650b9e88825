// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"github.com/momentics/repool/api"
	"github.com/momentics/repool/core/concurrency"
)

// BytePool recycles []byte of a single size class over a lock-free stack.
// Buffers released with more capacity than the class are kept as-is, so the
// class is a floor, not a cap.
type BytePool struct {
	free concurrency.TreiberStack[[]byte]
	size int
}

// NewBytePool creates a pool whose fresh buffers have capacity size.
func NewBytePool(size int) *BytePool {
	if size <= 0 {
		panic("pool: byte pool size must be positive")
	}
	return &BytePool{size: size}
}

// Acquire returns a slice of length n, reusing pooled storage when its
// capacity suffices. The returned bytes are not zeroed.
func (b *BytePool) Acquire(n int) []byte {
	if buf, ok := b.free.Pop(); ok && cap(buf) >= n {
		return buf[:n]
	}
	// Undersized pops fall through and are left for the GC.
	size := b.size
	if n > size {
		size = n
	}
	return make([]byte, n, size)
}

// Release returns a buffer to the pool.
func (b *BytePool) Release(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	b.free.Push(buf)
}

var _ api.BytePool = (*BytePool)(nil)
