// File: pool/sharded.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// CPU-sharded pool: one free-list per shard keeps hot CAS traffic off a
// single head under heavy fan-out. Shards share one factory; a guard always
// releases to the shard it was borrowed from.

package pool

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/repool/api"
)

// ShardedPool partitions a pool's free-list by the caller's current CPU.
// Retention stays unbounded; sharding only spreads the head contention.
type ShardedPool[T any] struct {
	shards []*Pool[T]
}

// NewSharded creates a pool with the given shard count. The count must be
// positive; runtime.NumCPU is a reasonable choice.
func NewSharded[T any](shards int, create func() T, opts ...Option[T]) (*ShardedPool[T], error) {
	if shards <= 0 {
		return nil, fmt.Errorf("%w: shard count %d", api.ErrInvalidArgument, shards)
	}
	sp := &ShardedPool[T]{shards: make([]*Pool[T], shards)}
	for i := range sp.shards {
		sp.shards[i] = New(create, opts...)
	}
	return sp, nil
}

// Get borrows from the shard of the current CPU. The guard's Release returns
// the entry to that same shard even if the goroutine has migrated since.
func (sp *ShardedPool[T]) Get() *Guard[T] {
	return sp.shards[currentCPU()%len(sp.shards)].Get()
}

// Stats aggregates accounting across all shards.
func (sp *ShardedPool[T]) Stats() api.PoolStats {
	var total api.PoolStats
	for _, p := range sp.shards {
		s := p.Stats()
		total.TotalAlloc += s.TotalAlloc
		total.TotalReuse += s.TotalReuse
		total.TotalReturn += s.TotalReturn
		total.InUse += s.InUse
		total.Idle += s.Idle
	}
	return total
}

// shardCounter feeds the round-robin fallback on platforms without a cheap
// CPU identity call.
var shardCounter atomic.Uint32

func nextShard() int {
	return int(shardCounter.Add(1) & 0x7fffffff)
}
