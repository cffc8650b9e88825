// Package pool_test — concurrent stress for the borrow/return protocol.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool_test

import (
	"sync/atomic"
	"testing"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/require"

	"github.com/momentics/repool/pool"
)

// stressItem is an instrumented pooled value: the inUse flag trips whenever
// two live guards would observe the same entry at once.
type stressItem struct {
	inUse atomic.Bool
	buf   []byte
}

// TestPool_StressExclusivity churns borrow/mutate/release across many
// goroutines and verifies exclusivity and conservation afterwards.
func TestPool_StressExclusivity(t *testing.T) {
	const goroutines = 16
	const iterations = 5000

	p := pool.New(func() *stressItem {
		return &stressItem{buf: make([]byte, 0, 64)}
	})

	var violations atomic.Int64
	var wg conc.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Go(func() {
			for i := 0; i < iterations; i++ {
				guard := p.Get()
				it := guard.Value()
				if !it.inUse.CompareAndSwap(false, true) {
					violations.Add(1)
				}
				it.buf = append(it.buf[:0], byte(i), byte(i>>8))
				it.inUse.Store(false)
				guard.Release()
			}
		})
	}
	wg.Wait()

	require.Zero(t, violations.Load(), "two live guards observed the same entry")

	s := p.Stats()
	require.EqualValues(t, 0, s.InUse, "every guard must have been released")
	require.Equal(t, s.TotalAlloc, s.Idle, "every construction must be linked in the free-list")
	require.Equal(t, s.TotalAlloc+s.TotalReuse, s.TotalReturn, "every borrow must have returned")
	require.LessOrEqual(t, s.TotalAlloc, int64(goroutines),
		"misses are bounded by peak concurrency")

	// Draining Idle entries one by one also proves the chain is finite and
	// acyclic: a cycle would never pop empty.
	drained := int64(0)
	for {
		g, ok := p.TryGet()
		if !ok {
			break
		}
		require.False(t, g.Value().inUse.Load())
		drained++
	}
	require.Equal(t, s.Idle, drained)
}
