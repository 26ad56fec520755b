package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/spel/spel/internal/errs"
	"github.com/spel/spel/internal/sessionfs"
)

// wireRequest/wireResponse mirror internal/daemon's protocol types on the
// client side, kept separate so the CLI never imports the daemon package
// directly (it only ever talks to it over the socket).
type wireRequest struct {
	Action string                 `json:"action"`
	Params map[string]interface{} `json:"params,omitempty"`
	Flags  map[string]interface{} `json:"_flags,omitempty"`
}

type wireResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
	Error   *wireErrorInfo         `json:"error"`
}

type wireErrorInfo struct {
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// daemonCall ensures a suitable daemon is running for the current session,
// sends one request, and retries per spec's retry policy (5 attempts,
// 200ms backoff, re-ensuring the daemon each time).
func daemonCall(action string, params map[string]interface{}) (*wireResponse, error) {
	if err := ensureDaemon(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < 5; attempt++ {
		resp, err := sendOnce(action, params)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if attempt == 1 {
			killStale()
		}
		if err := ensureDaemon(); err != nil {
			return nil, err
		}
		time.Sleep(200 * time.Millisecond)
	}
	return nil, &errs.DaemonUnreachable{Session: session, Cause: lastErr}
}

func sendOnce(action string, params map[string]interface{}) (*wireResponse, error) {
	timeout := time.Duration(timeoutMS) * time.Millisecond
	conn, err := dialSession(sessionfs.SocketPath(session), timeout)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	req := wireRequest{Action: action, Params: params, Flags: launchFlags()}
	encoded, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	conn.SetDeadline(time.Now().Add(timeout))
	if _, err := conn.Write(append(encoded, '\n')); err != nil {
		return nil, err
	}

	reader := bufio.NewReader(conn)
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, &errs.DaemonTimeout{TimeoutMS: timeoutMS}
	}

	var resp wireResponse
	if err := json.Unmarshal([]byte(line), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ensureDaemon implements spec's daemon lifecycle policy: restart headed
// for --interactive, kill-stale when the pidfile is live but the socket is
// dead, or start fresh when nothing exists.
func ensureDaemon() error {
	if interactive && sessionfs.DaemonRunning(session) && !sessionWasHeaded() {
		restartHeaded()
	}

	if sessionfs.Live(session) {
		return nil
	}
	if sessionfs.DaemonRunning(session) {
		killStale()
	}
	return startDaemon()
}

// sessionWasHeaded is a best-effort check (no headless flag is persisted
// outside the daemon's own memory, so this always reports false — a
// headed daemon's own PersistentPreRun records nothing the client can
// read). The conservative behaviour is to attempt the restart whenever
// --interactive is requested against any running daemon.
func sessionWasHeaded() bool { return false }

func restartHeaded() {
	sendOnce("close", nil)
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if !sessionfs.DaemonRunning(session) {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	sessionfs.CleanStale(session)
	sessionfs.Cleanup(session)
}

func killStale() {
	if pid, ok := sessionfs.ReadPID(session); ok {
		sessionfs.KillPid(pid)
	}
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if pid, ok := sessionfs.ReadPID(session); !ok || !sessionfs.ProcessExists(pid) {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	sessionfs.CleanStale(session)
	sessionfs.Cleanup(session)
}

func startDaemon() error {
	sessionfs.CleanStale(session)

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("find executable: %w", err)
	}
	args := []string{"daemon", "--session", session}
	if interactive {
		args = append(args, "--headed")
	}

	logFile, err := os.OpenFile(sessionfs.LogFilePath(session), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	cmd := exec.Command(exe, args...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.Stdin = nil
	setSysProcAttr(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start daemon: %w", err)
	}

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		if sessionfs.SocketConnectable(session) {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return &errs.DaemonUnreachable{Session: session, Cause: fmt.Errorf("daemon did not become connectable within 30s")}
}
