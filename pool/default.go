// File: pool/default.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"sync"

	"github.com/momentics/repool/api"
)

const defaultByteClass = 4096

var (
	defaultOnce sync.Once
	defaultByte *BytePool
)

// Default returns a process-wide BytePool so independent components share
// one set of recycled buffers instead of fragmenting allocations.
func Default() api.BytePool {
	defaultOnce.Do(func() {
		defaultByte = NewBytePool(defaultByteClass)
	})
	return defaultByte
}
