// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines abstract pooling APIs: reusable allocation surfaces shared across
// the library.

package api

// BytePool provides reusable []byte buffers for high-intensity call sites.
type BytePool interface {
	// Acquire returns a slice of length n, reusing pooled storage when its
	// capacity suffices. The returned bytes are not zeroed.
	Acquire(n int) []byte

	// Release returns a buffer to the pool.
	Release(buf []byte)
}

// ObjectPool provides generic pooling of Go objects allocated transiently.
// Implementations hand out bare values; the caller must balance every Get
// with exactly one Put.
type ObjectPool[T any] interface {
	// Get returns an available instance from the pool.
	Get() T

	// Put returns an instance for reuse.
	Put(obj T)
}

// PoolStats is a snapshot of a pool's allocation accounting.
type PoolStats struct {
	// TotalAlloc counts values constructed because the free-list was empty.
	TotalAlloc int64
	// TotalReuse counts borrows served from the free-list.
	TotalReuse int64
	// TotalReturn counts entries linked back after release.
	TotalReturn int64
	// InUse is the number of values currently held by live guards.
	InUse int64
	// Idle is the number of entries currently linked in the free-list.
	Idle int64
}
