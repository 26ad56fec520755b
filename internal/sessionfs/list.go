package sessionfs

import (
	"os"
	"strings"
)

// SessionInfo summarizes one on-disk session for session_list.
type SessionInfo struct {
	Name    string
	Pid     int
	Live    bool
	Socket  string
	LogFile string
}

// List enumerates every session with a pid-file under the temp directory,
// live or stale.
func List() []SessionInfo {
	entries, err := os.ReadDir(baseDir())
	if err != nil {
		return nil
	}
	var out []SessionInfo
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix+"-") || !strings.HasSuffix(name, ".pid") {
			continue
		}
		session := strings.TrimSuffix(strings.TrimPrefix(name, prefix+"-"), ".pid")
		pid, _ := ReadPID(session)
		out = append(out, SessionInfo{
			Name:    session,
			Pid:     pid,
			Live:    Live(session),
			Socket:  SocketPath(session),
			LogFile: LogFilePath(session),
		})
	}
	return out
}
