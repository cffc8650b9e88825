//go:build linux
// +build linux

// File: pool/cpu_linux.go
// Author: momentics <momentics@gmail.com>
//
// CPU identity via getcpu(2). The goroutine may migrate right after the
// call; the shard choice only has to be right most of the time.

package pool

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func currentCPU() int {
	var cpu, node uint32
	_, _, errno := unix.RawSyscall(unix.SYS_GETCPU,
		uintptr(unsafe.Pointer(&cpu)), uintptr(unsafe.Pointer(&node)), 0)
	if errno != 0 {
		return nextShard()
	}
	return int(cpu)
}
