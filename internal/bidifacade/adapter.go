package bidifacade

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spel/spel/internal/facade"
	"github.com/spel/spel/internal/log"
)

// Adapter is the one concrete facade.Port implementation: it drives a
// locally-launched or CDP-connected browser over WebDriver BiDi.
type Adapter struct{}

// New returns the adapter. There is exactly one per daemon process.
func New() *Adapter { return &Adapter{} }

var _ facade.Port = (*Adapter)(nil)

// Launch starts a fresh (non-persistent) browser on a temporary profile
// directory. It creates no context; callers use Engine.NewContext.
func (a *Adapter) Launch(ctx context.Context, opts facade.LaunchOptions) (facade.Engine, error) {
	tmp, err := os.MkdirTemp("", "spel-profile-*")
	if err != nil {
		return nil, fmt.Errorf("create temp profile: %w", err)
	}
	proc, err := launchProcess(opts, tmp, true)
	if err != nil {
		os.RemoveAll(tmp)
		return nil, err
	}
	return newEngine(proc)
}

// LaunchPersistent launches a browser directly on a user profile directory,
// where browser and context are inseparable (spec Glossary "Persistent
// context").
func (a *Adapter) LaunchPersistent(ctx context.Context, profileDir string, opts facade.LaunchOptions) (facade.Engine, facade.Context, error) {
	proc, err := launchProcess(opts, profileDir, false)
	if err != nil {
		return nil, nil, err
	}
	eng, err := newEngine(proc)
	if err != nil {
		return nil, nil, err
	}
	bc, err := eng.NewContext(ctx, facade.ContextOptions{})
	if err != nil {
		eng.Close(ctx)
		return nil, nil, err
	}
	return eng, bc, nil
}

// ConnectCDP connects to an already-running browser's remote debugging
// WebSocket endpoint rather than launching a new one.
func (a *Adapter) ConnectCDP(ctx context.Context, url string) (facade.Engine, error) {
	conn, err := connectWithHeaders(url, http.Header{})
	if err != nil {
		return nil, fmt.Errorf("connect cdp: %w", err)
	}
	cl := newClient(conn)
	log.Debug("connected over cdp", "url", url)
	return &engine{cl: cl, proc: nil}, nil
}
