// File: pool/options.go
// Package pool defines functional options for Pool construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

// Option customizes pool initialization.
type Option[T any] func(*Pool[T])

// WithReset installs a hook run on every release, before the entry rejoins
// the free-list. Without it a value is reused exactly as the previous
// borrower left it. The hook receives a pointer so it can trim a slice or
// clear a struct in place without losing the backing storage.
func WithReset[T any](reset func(*T)) Option[T] {
	return func(p *Pool[T]) {
		p.reset = reset
	}
}
