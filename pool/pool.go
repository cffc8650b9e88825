// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/momentics/repool/api"
	"github.com/momentics/repool/core/concurrency"
)

// entry is the unit of reuse: allocated once on a miss, then cycling between
// exactly one live Guard and the free-list until the pool itself is collected.
type entry[T any] struct {
	value T
}

// Pool is a lock-free object pool. Get pops the free-list and falls back to
// the factory on a miss; releasing the returned Guard pushes the entry back.
//
// The factory runs outside any lock, so concurrent misses may invoke it
// concurrently. A factory that can fail should not be wrapped in New: use
// TryGet to pop the free-list and, on a miss, construct the value in caller
// code and adopt it with Wrap, keeping the caller's own error path intact.
//
// A Pool must outlive every Guard it has issued.
type Pool[T any] struct {
	free   concurrency.TreiberStack[*entry[T]]
	create func() T
	reset  func(*T)

	allocs  atomic.Int64
	reuses  atomic.Int64
	returns atomic.Int64
}

// New creates an empty pool bound to the create factory. No entries are
// preallocated.
func New[T any](create func() T, opts ...Option[T]) *Pool[T] {
	if create == nil {
		panic("pool: nil factory")
	}
	p := &Pool[T]{create: create}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get returns a guard owning a pooled value, constructing a fresh one on a
// miss. It never blocks. A reused value keeps whatever state its previous
// borrower left in it.
func (p *Pool[T]) Get() *Guard[T] {
	if e, ok := p.free.Pop(); ok {
		p.reuses.Add(1)
		return &Guard[T]{pool: p, entry: e}
	}
	p.allocs.Add(1)
	return &Guard[T]{pool: p, entry: &entry[T]{value: p.create()}}
}

// TryGet pops the free-list without ever invoking the factory. ok is false
// when the free-list was observed empty.
func (p *Pool[T]) TryGet() (g *Guard[T], ok bool) {
	e, ok := p.free.Pop()
	if !ok {
		return nil, false
	}
	p.reuses.Add(1)
	return &Guard[T]{pool: p, entry: e}, true
}

// Wrap adopts a caller-constructed value into the pool's reuse cycle and
// returns a guard owning it. Combined with TryGet it serves factories that
// can fail.
func (p *Pool[T]) Wrap(v T) *Guard[T] {
	p.allocs.Add(1)
	return &Guard[T]{pool: p, entry: &entry[T]{value: v}}
}

// Stats returns a snapshot of the pool's accounting.
func (p *Pool[T]) Stats() api.PoolStats {
	allocs := p.allocs.Load()
	reuses := p.reuses.Load()
	returns := p.returns.Load()
	return api.PoolStats{
		TotalAlloc:  allocs,
		TotalReuse:  reuses,
		TotalReturn: returns,
		InUse:       allocs + reuses - returns,
		Idle:        int64(p.free.Len()),
	}
}

// put links e back into the free-list, applying the reset hook first.
func (p *Pool[T]) put(e *entry[T]) {
	if p.reset != nil {
		p.reset(&e.value)
	}
	p.returns.Add(1)
	p.free.Push(e)
}
