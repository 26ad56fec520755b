//go:build windows

package bidifacade

import (
	"os/exec"
	"syscall"
	"time"
)

func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}

// terminateGracefully sends CTRL_BREAK_EVENT to the browser's process
// group (its pid doubles as the group id under CREATE_NEW_PROCESS_GROUP),
// giving Chrome a chance to flush its profile before close's harder
// TerminateProcess fallback runs.
func terminateGracefully(pid int) {
	const ctrlBreakEvent = 1
	syscall.GenerateConsoleCtrlEvent(ctrlBreakEvent, uint32(pid))
}

func killByPid(pid int) {
	const processTerminate = 0x0001
	h, err := syscall.OpenProcess(processTerminate, false, uint32(pid))
	if err != nil {
		return
	}
	defer syscall.CloseHandle(h)
	syscall.TerminateProcess(h, 1)
}

func waitForProcessesDead(pids []int, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		allDead := true
		for _, pid := range pids {
			const processQueryLimitedInformation = 0x1000
			h, err := syscall.OpenProcess(processQueryLimitedInformation, false, uint32(pid))
			if err == nil {
				syscall.CloseHandle(h)
				allDead = false
				break
			}
		}
		if allDead {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
}
