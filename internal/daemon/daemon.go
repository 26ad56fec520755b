// Package daemon is the Daemon Server (C3): it owns the single browser
// process for a session, lazily starts it on first use, and serves one
// JSON-line request per connection over a Unix socket or named pipe.
package daemon

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spel/spel/internal/facade"
	"github.com/spel/spel/internal/log"
	"github.com/spel/spel/internal/sessionfs"
)

// Daemon serves one named browser session.
type Daemon struct {
	session      string
	version      string
	listener     net.Listener
	state        *state
	mu           sync.Mutex
	startTime    time.Time
	lastActivity time.Time
	idleTimeout  time.Duration
	socketPath   string
	shutdownOnce sync.Once
	done         chan struct{}
}

func New(session, version string, idleTimeout time.Duration, st *state) *Daemon {
	return &Daemon{
		session:     session,
		version:     version,
		state:       st,
		idleTimeout: idleTimeout,
		startTime:   time.Now(),
		done:        make(chan struct{}),
	}
}

// NewWithPort is the entry point cmd/spel uses to build a daemon around a
// concrete browser facade port, without reaching into the package's
// unexported state type.
func NewWithPort(session, version string, idleTimeout time.Duration, port facade.Port) *Daemon {
	return New(session, version, idleTimeout, newState(port, session))
}

// Run cleans up any stale session files, binds the transport, writes the
// pidfile and serves until ctx is cancelled. It never returns until
// shutdown.
func (d *Daemon) Run(ctx context.Context) error {
	sessionfs.CleanStale(d.session)

	socketPath := sessionfs.SocketPath(d.session)
	d.socketPath = socketPath

	listener, err := listen(socketPath)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	d.listener = listener

	if err := sessionfs.WritePID(d.session); err != nil {
		listener.Close()
		return fmt.Errorf("write pid: %w", err)
	}

	d.touchActivity()
	log.Debug("daemon started", "session", d.session, "socket", socketPath, "pid", os.Getpid())

	if d.idleTimeout > 0 {
		go d.watchIdle(ctx)
	}

	go func() {
		<-ctx.Done()
		d.Shutdown()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-d.done:
				return nil
			default:
				log.Debug("accept error", "err", err)
				continue
			}
		}
		go d.handleConnection(conn)
	}
}

func (d *Daemon) Shutdown() {
	d.shutdownOnce.Do(func() {
		log.Debug("daemon shutting down", "session", d.session)
		close(d.done)

		d.mu.Lock()
		d.state.shutdown(context.Background())
		d.mu.Unlock()

		if d.listener != nil {
			d.listener.Close()
		}
		sessionfs.Cleanup(d.session)
	})
}

func (d *Daemon) touchActivity() {
	d.mu.Lock()
	d.lastActivity = time.Now()
	d.mu.Unlock()
}

func (d *Daemon) watchIdle(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			d.mu.Lock()
			idle := time.Since(d.lastActivity)
			d.mu.Unlock()
			if idle >= d.idleTimeout {
				log.Debug("idle timeout reached, shutting down", "idle", idle)
				d.Shutdown()
				return
			}
		case <-d.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (d *Daemon) handleConnection(conn net.Conn) {
	defer conn.Close()
	d.touchActivity()

	reqID := uuid.NewString()

	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	decoder := json.NewDecoder(conn)
	var req Request
	if err := decoder.Decode(&req); err != nil {
		log.Debug("decode request failed", "reqID", reqID, "err", err)
		return
	}

	start := time.Now()
	log.Debug("request received", "reqID", reqID, "action", req.Action)
	resp := d.dispatch(context.Background(), req)
	log.Debug("request completed", "reqID", reqID, "action", req.Action, "success", resp.Success, "elapsed", time.Since(start))

	data, err := json.Marshal(resp)
	if err != nil {
		log.Debug("marshal response failed", "reqID", reqID, "err", err)
		return
	}
	conn.SetWriteDeadline(time.Now().Add(60 * time.Second))
	fmt.Fprintf(conn, "%s\n", data)
}
