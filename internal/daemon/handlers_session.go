package daemon

import (
	"context"
	"os"
	"time"

	"github.com/spel/spel/internal/sessionfs"
)

func init() {
	register("session_list", handleSessionList)
	register("session_info", handleSessionInfo)
}

func handleSessionList(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	sessions := sessionfs.List()
	out := make([]map[string]interface{}, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, map[string]interface{}{
			"name": s.Name,
			"pid":  s.Pid,
			"live": s.Live,
		})
	}
	return map[string]interface{}{"sessions": out}, nil
}

func handleSessionInfo(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	return map[string]interface{}{
		"session":      d.session,
		"pid":          os.Getpid(),
		"hasBrowser":   d.state.hasBrowser(),
		"headless":     d.state.headless,
		"uptime":       time.Since(d.startTime).String(),
		"lastActivity": d.lastActivity,
	}, nil
}
