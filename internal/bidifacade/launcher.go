package bidifacade

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/spel/spel/internal/facade"
	"github.com/spel/spel/internal/log"
)

// candidateExecutables is searched, in order, when ExecutablePath is unset.
// Grounded on the same launcher-discovery idea as chrome-vision's pkg/cdp
// (executables table + exec.LookPath loop).
var candidateExecutables = []string{
	"google-chrome", "google-chrome-stable", "chromium", "chromium-browser",
	"chrome", "microsoft-edge", "msedge",
}

// process wraps a launched browser subprocess and its debugger endpoint.
type process struct {
	cmd          *exec.Cmd
	webSocketURL string
	userDataDir  string
	tempProfile  bool
}

func findExecutable(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, name := range candidateExecutables {
		if p, err := exec.LookPath(name); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no browser executable found; set --executable-path")
}

func defaultArgs(headless bool, userDataDir string, port int) []string {
	args := []string{
		fmt.Sprintf("--remote-debugging-port=%d", port),
		"--user-data-dir=" + userDataDir,
		"--no-first-run",
		"--no-default-browser-check",
		"--disable-popup-blocking",
	}
	if headless {
		args = append(args, "--headless=new")
	}
	return args
}

// launchProcess starts a fresh browser process with the given profile
// directory and returns once its DevTools/BiDi WebSocket endpoint is
// reachable.
func launchProcess(opts facade.LaunchOptions, userDataDir string, tempProfile bool) (*process, error) {
	exePath, err := findExecutable(opts.ExecutablePath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(userDataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}

	port := 0 // let Chrome choose; read back from DevToolsActivePort
	args := defaultArgs(opts.Headless, userDataDir, port)
	if opts.ProxyServer != "" {
		args = append(args, "--proxy-server="+opts.ProxyServer)
	}
	if opts.ProxyBypass != "" {
		args = append(args, "--proxy-bypass-list="+opts.ProxyBypass)
	}
	for _, a := range opts.ExtraArgs {
		if a = strings.TrimSpace(a); a != "" {
			args = append(args, a)
		}
	}

	cmd := exec.Command(exePath, args...)
	setProcGroup(cmd)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start browser: %w", err)
	}
	log.Debug("browser process started", "exe", exePath, "pid", cmd.Process.Pid)

	wsURL, err := waitForDevToolsEndpoint(userDataDir, 15*time.Second)
	if err != nil {
		killByPid(cmd.Process.Pid)
		return nil, err
	}

	return &process{cmd: cmd, webSocketURL: wsURL, userDataDir: userDataDir, tempProfile: tempProfile}, nil
}

// waitForDevToolsEndpoint polls the DevToolsActivePort file Chrome writes
// into its user-data-dir, then resolves the browser-level WebSocket URL via
// the /json/version HTTP endpoint.
func waitForDevToolsEndpoint(userDataDir string, timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)
	portFile := filepath.Join(userDataDir, "DevToolsActivePort")
	var port string
	for time.Now().Before(deadline) {
		data, err := os.ReadFile(portFile)
		if err == nil {
			lines := strings.SplitN(string(data), "\n", 2)
			if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
				port = strings.TrimSpace(lines[0])
				break
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	if port == "" {
		return "", fmt.Errorf("timed out waiting for browser DevTools port")
	}

	versionURL := fmt.Sprintf("http://127.0.0.1:%s/json/version", port)
	for time.Now().Before(deadline) {
		resp, err := http.Get(versionURL)
		if err == nil {
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)
			var v struct {
				WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
			}
			if json.Unmarshal(body, &v) == nil && v.WebSocketDebuggerURL != "" {
				return v.WebSocketDebuggerURL, nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return "", fmt.Errorf("timed out waiting for DevTools WebSocket endpoint")
}

// close terminates the browser process group in two phases: a graceful
// signal first (SIGTERM/CTRL_BREAK to the whole group), giving Chrome a
// window to flush its profile to the user-data-dir, then an unconditional
// kill for whatever survives. Serves the daemon's shutdown-hook contract
// that session files are safe to delete once close returns.
func (p *process) close() {
	if p.cmd == nil || p.cmd.Process == nil {
		return
	}
	pid := p.cmd.Process.Pid
	terminateGracefully(pid)
	waitForProcessesDead([]int{pid}, 2*time.Second)
	killByPid(pid)
	waitForProcessesDead([]int{pid}, 3*time.Second)
	if p.tempProfile {
		os.RemoveAll(p.userDataDir)
	}
}
