//go:build !linux && !windows
// +build !linux,!windows

// File: pool/cpu_stub.go
// Author: momentics <momentics@gmail.com>
//
// Round-robin fallback for platforms without a cheap CPU identity call.

package pool

func currentCPU() int {
	return nextShard()
}
