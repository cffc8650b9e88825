// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for the pool family: lock-free borrow/return
// against a sync.Pool baseline and a mutex-guarded FIFO baseline, measured
// over 4 KiB buffer churn with and without contention.

package benchmarks

import (
	"runtime"
	"sync"
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/repool/core/concurrency"
	"github.com/momentics/repool/pool"
)

const bufCap = 4 * 1024

// BenchmarkPoolGetRelease measures the contended borrow/return hot path.
func BenchmarkPoolGetRelease(b *testing.B) {
	p := pool.New(func() []byte { return make([]byte, 0, bufCap) })

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g := p.Get()
			g.Release()
		}
	})
}

// BenchmarkPoolGetReleaseSerial measures the uncontended path.
func BenchmarkPoolGetReleaseSerial(b *testing.B) {
	p := pool.New(func() []byte { return make([]byte, 0, bufCap) })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := p.Get()
		g.Release()
	}
}

// BenchmarkShardedPoolGetRelease measures the CPU-sharded variant under the
// same contention.
func BenchmarkShardedPoolGetRelease(b *testing.B) {
	sp, err := pool.NewSharded(runtime.NumCPU(), func() []byte {
		return make([]byte, 0, bufCap)
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g := sp.Get()
			g.Release()
		}
	})
}

// BenchmarkSyncPoolBaseline is the stdlib reference point.
func BenchmarkSyncPoolBaseline(b *testing.B) {
	p := sync.Pool{New: func() any { return make([]byte, 0, bufCap) }}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf := p.Get().([]byte)
			p.Put(buf)
		}
	})
}

// BenchmarkLockedQueueBaseline is the lock-based reference point: the same
// reuse discipline behind a mutex and a FIFO.
func BenchmarkLockedQueueBaseline(b *testing.B) {
	var mu sync.Mutex
	q := queue.New()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mu.Lock()
			var buf []byte
			if q.Length() > 0 {
				buf = q.Remove().([]byte)
			} else {
				buf = make([]byte, 0, bufCap)
			}
			mu.Unlock()

			mu.Lock()
			q.Add(buf)
			mu.Unlock()
		}
	})
}

// BenchmarkTreiberStackPushPop measures the bare free-list.
func BenchmarkTreiberStackPushPop(b *testing.B) {
	var s concurrency.TreiberStack[int]

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			s.Push(i)
			s.Pop()
			i++
		}
	})
}
