//go:build windows
// +build windows

// File: pool/cpu_windows.go
// Author: momentics <momentics@gmail.com>
//
// CPU identity via kernel32 GetCurrentProcessorNumber.

package pool

import "golang.org/x/sys/windows"

var procGetCurrentProcessorNumber = windows.NewLazySystemDLL("kernel32.dll").
	NewProc("GetCurrentProcessorNumber")

func currentCPU() int {
	n, _, _ := procGetCurrentProcessorNumber.Call()
	return int(uint32(n))
}
