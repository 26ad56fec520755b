package daemon

import (
	"context"

	"github.com/spel/spel/internal/facade"
)

func init() {
	register("connect", handleConnect)
}

// handleConnect attaches to an already-running browser over CDP/BiDi
// mid-session, tearing down any browser this daemon already owns first.
func handleConnect(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	endpoint := stringFlag(params, "cdp")
	if endpoint == "" {
		return nil, &paramError{"cdp"}
	}
	if d.state.hasBrowser() {
		d.state.shutdown(ctx)
		d.state.engine = nil
		d.state.ctx = nil
		d.state.pages = nil
	}

	engine, err := d.state.port.ConnectCDP(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	bc, err := engine.NewContext(ctx, contextOptionsFromFlags(d.state.launchFlags))
	if err != nil {
		engine.Close(ctx)
		return nil, err
	}
	page, err := bc.NewPage(ctx)
	if err != nil {
		bc.Close(ctx)
		engine.Close(ctx)
		return nil, err
	}
	d.state.engine = engine
	d.state.ctx = bc
	d.state.pages = []facade.Page{page}
	d.state.current = 0
	d.state.attachListeners(page)
	d.state.refs.Reset()
	return nil, nil
}
