//go:build windows

package sessionfs

import (
	"syscall"
)

// ProcessExists checks if a process with the given pid exists by attempting
// to open a handle to it.
func ProcessExists(pid int) bool {
	const processQueryLimitedInformation = 0x1000
	h, err := syscall.OpenProcess(processQueryLimitedInformation, false, uint32(pid))
	if err != nil {
		return false
	}
	syscall.CloseHandle(h)
	return true
}

// KillPid forcibly terminates a process.
func KillPid(pid int) {
	const processTerminate = 0x0001
	h, err := syscall.OpenProcess(processTerminate, false, uint32(pid))
	if err != nil {
		return
	}
	defer syscall.CloseHandle(h)
	syscall.TerminateProcess(h, 1)
}
