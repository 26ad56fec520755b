// Package sessionfs is the Session Filesystem component (C1): it names and
// locates the socket, pid-file, log-file, and storage-state file for a
// named session, and owns liveness/ownership checks (spec §4.1).
package sessionfs

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spel/spel/internal/errs"
	"github.com/spel/spel/internal/log"
)

const prefix = "spel"

// DefaultSession is the session name used when the user specifies none.
const DefaultSession = "default"

func baseDir() string {
	return os.TempDir()
}

// PidFilePath returns the pid-file path for a named session.
func PidFilePath(session string) string {
	return filepath.Join(baseDir(), prefix+"-"+session+".pid")
}

// LogFilePath returns the log-file path for a named session.
func LogFilePath(session string) string {
	return filepath.Join(baseDir(), prefix+"-"+session+".log")
}

// StorageStatePath returns the default auto-save/auto-load storage-state
// path for a named session.
func StorageStatePath(session string) string {
	return filepath.Join(baseDir(), prefix+"-session-"+session+".json")
}

// NamedStateDir is where explicitly-named storage states (state_save/_list/
// _show/_rename/_clean) are kept, one JSON file per name.
func NamedStateDir() string {
	return filepath.Join(baseDir(), prefix+"-states")
}

// NamedStatePath returns the path for an explicitly named storage state.
func NamedStatePath(name string) string {
	return filepath.Join(NamedStateDir(), name+".json")
}

// Cleanup idempotently deletes the socket and pid-file for a session.
// Best-effort: failures log and proceed (spec §4.1 error kinds).
func Cleanup(session string) {
	paths := []string{PidFilePath(session)}
	// Named pipes on Windows are kernel-managed and leave no file to remove.
	if runtime.GOOS != "windows" {
		paths = append(paths, SocketPath(session))
	}
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Warn("cleanup failed", "path", p, "error", err)
		}
	}
}

// OwnsPidFile reports whether the session's pid-file contains this
// process's pid.
func OwnsPidFile(session string) bool {
	pid, ok := ReadPID(session)
	return ok && pid == os.Getpid()
}

// ReadPID reads the pid recorded for a session. ok is false if the file is
// absent, unreadable, or malformed.
func ReadPID(session string) (pid int, ok bool) {
	data, err := os.ReadFile(PidFilePath(session))
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// WritePID writes the current process's pid to the session's pid-file.
func WritePID(session string) error {
	if err := os.MkdirAll(baseDir(), 0o755); err != nil {
		return &errs.FSError{Op: "mkdir", Path: baseDir(), Cause: err}
	}
	path := PidFilePath(session)
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return &errs.FSError{Op: "write pidfile", Path: path, Cause: err}
	}
	return nil
}

// RemovePID removes the session's pid-file, best-effort.
func RemovePID(session string) {
	if err := os.Remove(PidFilePath(session)); err != nil && !os.IsNotExist(err) {
		log.Warn("remove pidfile failed", "error", err)
	}
}

// DaemonRunning reports whether a pid-file exists with a live process for
// this session. A stale pid-file (dead process) is deleted and false is
// returned (spec §4.1 / §8 property 2).
func DaemonRunning(session string) bool {
	pid, ok := ReadPID(session)
	if !ok {
		return false
	}
	if !ProcessExists(pid) {
		RemovePID(session)
		return false
	}
	return true
}

// Live reports the full liveness invariant from spec §3: pid-file exists
// AND pid alive AND socket connectable. Any other combination is stale.
func Live(session string) bool {
	if !DaemonRunning(session) {
		return false
	}
	return SocketConnectable(session)
}

// CleanStale removes the pid-file (and, on Unix, the socket file) for a
// session whose recorded process is no longer running.
func CleanStale(session string) {
	pid, ok := ReadPID(session)
	if !ok {
		return
	}
	if ProcessExists(pid) {
		return
	}
	RemovePID(session)
	Cleanup(session)
}

