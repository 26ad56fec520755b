//go:build windows

package main

import "os/exec"

func setSysProcAttr(cmd *exec.Cmd) {
	// Detaching on Windows happens via CREATE_NEW_PROCESS_GROUP at Start
	// time; go-winio's pipes don't need a console to inherit.
}
