package daemon

import (
	"context"

	"github.com/spel/spel/internal/sessionfs"
)

func init() {
	register("close", handleClose)
	register("shutdown", handleShutdown)
}

// handleClose auto-saves storage-state if a session-name launch-flag is
// set, then signals the connection loop to shut the daemon down.
func handleClose(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	if d.state.sessionName != "" && d.state.ctx != nil {
		d.state.ctx.SaveStorageState(ctx, sessionfs.StorageStatePath(d.state.sessionName))
	}
	go d.Shutdown()
	return map[string]interface{}{"closed": true, "shutdown": true}, nil
}

func handleShutdown(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	go d.Shutdown()
	return map[string]interface{}{"closed": true, "shutdown": true}, nil
}
