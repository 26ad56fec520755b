//go:build windows

package sessionfs

import (
	"context"
	"time"

	winio "github.com/Microsoft/go-winio"
)

// SocketPath returns the named-pipe path for a named session. Windows named
// pipes live in their own namespace, not the filesystem, so no tempdir file
// is created.
func SocketPath(session string) string {
	return `\\.\pipe\` + prefix + "-" + session
}

// SocketConnectable tests if the daemon named pipe for a session accepts
// connections.
func SocketConnectable(session string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, err := winio.DialPipeContext(ctx, SocketPath(session))
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
