// File: pool/objpool.go
// Author: momentics <momentics@gmail.com>
//
// Guard-free pooling for call sites that carry their own return discipline.

package pool

import (
	"github.com/momentics/repool/api"
	"github.com/momentics/repool/core/concurrency"
)

// StackPool is a generic Get/Put pool over a lock-free stack. Unlike Pool it
// hands out bare values: the caller is responsible for balancing every Get
// with exactly one Put. Prefer Pool when scope-based release fits.
type StackPool[T any] struct {
	free   concurrency.TreiberStack[T]
	create func() T
}

// NewStackPool creates a StackPool with a creator function.
func NewStackPool[T any](create func() T) *StackPool[T] {
	if create == nil {
		panic("pool: nil factory")
	}
	return &StackPool[T]{create: create}
}

// Get returns a pooled value, constructing one when the stack is empty.
func (p *StackPool[T]) Get() T {
	if v, ok := p.free.Pop(); ok {
		return v
	}
	return p.create()
}

// Put links obj back for reuse.
func (p *StackPool[T]) Put(obj T) {
	p.free.Push(obj)
}

var _ api.ObjectPool[int] = (*StackPool[int])(nil)
