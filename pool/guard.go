// File: pool/guard.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync/atomic"

// Guard is the scoped handle to one pooled entry. Exactly one live guard
// owns an entry at any time. Release returns the entry to the pool and must
// run exactly once; defer it next to Get so every exit path returns the
// entry:
//
//	g := p.Get()
//	defer g.Release()
//
// A second Release, or any access after Release, panics rather than
// corrupting the free-list chain.
type Guard[T any] struct {
	pool     *Pool[T]
	entry    *entry[T]
	released atomic.Bool
}

// Value returns the held value.
func (g *Guard[T]) Value() T {
	if g.released.Load() {
		panic("pool: guard used after release")
	}
	return g.entry.value
}

// Set replaces the held value. Needed for slice-typed values whose header
// changes as the borrower appends.
func (g *Guard[T]) Set(v T) {
	if g.released.Load() {
		panic("pool: guard used after release")
	}
	g.entry.value = v
}

// Release pushes the entry back onto the owning pool's free-list.
func (g *Guard[T]) Release() {
	if !g.released.CompareAndSwap(false, true) {
		panic("pool: guard released twice")
	}
	e := g.entry
	g.entry = nil
	g.pool.put(e)
}
