//go:build !windows

package sessionfs

import "syscall"

// ProcessExists checks if a process with the given pid exists. EPERM still
// means the process exists (just owned by someone else).
func ProcessExists(pid int) bool {
	err := syscall.Kill(pid, 0)
	return err == nil || err == syscall.EPERM
}

// KillPid sends SIGKILL to a process.
func KillPid(pid int) {
	syscall.Kill(pid, syscall.SIGKILL)
}
