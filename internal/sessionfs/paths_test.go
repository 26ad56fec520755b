package sessionfs

import (
	"math/rand"
	"os"
	"strconv"
	"testing"
)

// deadPID is a pid unlikely to be held by any live process in a test
// container's pid namespace.
const deadPID = 999999

func testSessionName(t *testing.T) string {
	t.Helper()
	name := "spel-test-" + t.Name() + "-" + strconv.Itoa(rand.Int())
	t.Cleanup(func() { Cleanup(name) })
	return name
}

// writeRawPID writes an arbitrary pid to a session's pid-file, bypassing
// WritePID (which always records the current process).
func writeRawPID(t *testing.T, session string, pid int) {
	t.Helper()
	if err := os.MkdirAll(baseDir(), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(PidFilePath(session), []byte(strconv.Itoa(pid)), 0o644); err != nil {
		t.Fatalf("write raw pid: %v", err)
	}
}

func TestWriteReadRemovePID(t *testing.T) {
	session := testSessionName(t)

	if _, ok := ReadPID(session); ok {
		t.Fatalf("expected no pid-file before WritePID")
	}
	if err := WritePID(session); err != nil {
		t.Fatalf("WritePID: %v", err)
	}
	if !OwnsPidFile(session) {
		t.Errorf("expected this process to own the freshly written pid-file")
	}
	RemovePID(session)
	if _, ok := ReadPID(session); ok {
		t.Errorf("expected pid-file gone after RemovePID")
	}
}

// TestDaemonRunningClearsDeadPID covers spec §8 property 2: a pid-file
// naming a process that no longer exists is treated as not-running and is
// deleted as a side effect.
func TestDaemonRunningClearsDeadPID(t *testing.T) {
	session := testSessionName(t)
	writeRawPID(t, session, deadPID)

	if DaemonRunning(session) {
		t.Fatalf("expected a dead pid to report not-running")
	}
	if _, ok := ReadPID(session); ok {
		t.Errorf("expected stale pid-file to be removed by DaemonRunning")
	}
}

func TestCleanStaleRemovesDeadSessionFiles(t *testing.T) {
	session := testSessionName(t)
	writeRawPID(t, session, deadPID)

	CleanStale(session)
	if _, ok := ReadPID(session); ok {
		t.Errorf("expected CleanStale to remove a dead session's pid-file")
	}
}

func TestCleanStaleLeavesLiveSessionAlone(t *testing.T) {
	session := testSessionName(t)
	if err := WritePID(session); err != nil {
		t.Fatalf("WritePID: %v", err)
	}
	CleanStale(session)
	if !OwnsPidFile(session) {
		t.Errorf("expected CleanStale to leave a live pid-file (this process) untouched")
	}
}
