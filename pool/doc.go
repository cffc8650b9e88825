// Package pool implements lock-free object pooling over a Treiber stack.
// Author: momentics <momentics@gmail.com>
//
// A Pool hands out scoped Guards; releasing a guard links its entry back into
// the free-list instead of freeing it. Nothing blocks: a miss allocates
// through the factory, contention retries a CAS loop. Values are reused
// exactly as the previous borrower left them unless a WithReset hook is
// installed.
//
// See pool.go and guard.go for the borrow/return protocol, sharded.go for the
// CPU-sharded variant, bytepool.go and objpool.go for guard-free pooling.
package pool
