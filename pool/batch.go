// Package pool — bulk guard handling without locks.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// GuardBatch is NOT thread-safe; it exists so a single borrower can hold a
// burst of entries and return them in one sweep.

package pool

// GuardBatch accumulates guards for bulk release.
type GuardBatch[T any] struct {
	guards []*Guard[T]
}

// NewGuardBatch creates a batch with the given capacity.
func NewGuardBatch[T any](capacity int) *GuardBatch[T] {
	return &GuardBatch[T]{guards: make([]*Guard[T], 0, capacity)}
}

// Append adds a guard to the batch.
func (b *GuardBatch[T]) Append(g *Guard[T]) {
	b.guards = append(b.guards, g)
}

// Len returns the number of held guards.
func (b *GuardBatch[T]) Len() int {
	return len(b.guards)
}

// Get retrieves the guard at idx.
func (b *GuardBatch[T]) Get(idx int) *Guard[T] {
	return b.guards[idx]
}

// ReleaseAll releases every held guard and resets the batch, retaining the
// underlying slice.
func (b *GuardBatch[T]) ReleaseAll() {
	for i, g := range b.guards {
		g.Release()
		b.guards[i] = nil
	}
	b.guards = b.guards[:0]
}
