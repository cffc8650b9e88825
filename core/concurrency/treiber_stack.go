// File: core/concurrency/treiber_stack.go
// Package concurrency provides the lock-free structures backing the pool family.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import "sync/atomic"

// link is a single node in the stack chain. A link is published exactly once:
// next is written before the CAS that installs it and never mutated after,
// and links are never recycled across pushes. A stale head pointer therefore
// cannot be reinstalled over a changed tail, which rules out ABA.
type link[T any] struct {
	value T
	next  *link[T]
}

// TreiberStack is a lock-free LIFO usable by any number of goroutines.
// Push and Pop are linearizable; each runs a CAS retry loop against the head
// and may spin under contention but never blocks or parks.
//
// The zero value is an empty stack ready for use.
type TreiberStack[T any] struct {
	head atomic.Pointer[link[T]]
	size atomic.Int64
}

// Push makes v the new top of the stack. It always succeeds.
func (s *TreiberStack[T]) Push(v T) {
	n := &link[T]{value: v}
	for {
		h := s.head.Load()
		n.next = h
		if s.head.CompareAndSwap(h, n) {
			s.size.Add(1)
			return
		}
	}
}

// Pop removes and returns the current top. ok is false when the stack was
// observed empty; an empty Pop has no side effect.
func (s *TreiberStack[T]) Pop() (v T, ok bool) {
	for {
		h := s.head.Load()
		if h == nil {
			return v, false
		}
		if s.head.CompareAndSwap(h, h.next) {
			s.size.Add(-1)
			v = h.value
			var zero T
			h.value = zero // drop the reference, the link is garbage now
			return v, true
		}
	}
}

// Len returns the number of linked values. The count trails the head by the
// width of an in-flight operation, so treat it as a snapshot, not a fence.
func (s *TreiberStack[T]) Len() int {
	return int(s.size.Load())
}

// Empty reports whether the stack has no linked values.
func (s *TreiberStack[T]) Empty() bool {
	return s.head.Load() == nil
}
