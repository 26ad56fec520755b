package daemon

import (
	"context"
	"errors"

	"github.com/spel/spel/internal/errs"
)

// actionFunc is the signature every action handler implements. params is
// req.Params; the daemon's browser state is reached through d.state,
// already guarded by d.mu by the time the handler runs.
type actionFunc func(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error)

// actions is the ~90-entry action table, populated by each handler family
// file's init(). One map keeps dispatch a single lookup regardless of how
// many files a family is split across.
var actions = make(map[string]actionFunc)

func register(name string, fn actionFunc) {
	if _, exists := actions[name]; exists {
		panic("daemon: duplicate action registered: " + name)
	}
	actions[name] = fn
}

// noBrowserActions lists the handful of actions that must work even
// without a running browser (session introspection, shutdown).
var noBrowserActions = map[string]bool{
	"session_list": true,
	"session_info": true,
	"close":        true,
	"shutdown":     true,
}

// dispatch runs one request end to end: ensure-browser, invoke handler,
// translate the result (or error) into the wire Response shape.
func (d *Daemon) dispatch(ctx context.Context, req Request) Response {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.touchActivity()

	fn, ok := actions[req.Action]
	if !ok {
		return errorResponse(&errs.ParseError{Detail: "unknown action " + req.Action})
	}

	if !noBrowserActions[req.Action] {
		if err := d.state.ensureBrowser(ctx, req.Flags); err != nil {
			return errorResponse(&errs.FacadeError{Cause: err, Hint: "check --executable-path or --cdp"})
		}
	}

	data, err := fn(ctx, d, req.Params)
	if err != nil {
		return errorResponse(err)
	}
	return Response{Success: true, Data: data}
}

func errorResponse(err error) Response {
	info := &ErrorInfo{Message: err.Error()}

	var facadeErr *errs.FacadeError
	var unknownRef *errs.UnknownRefError
	switch {
	case errors.As(err, &facadeErr) && facadeErr.Hint != "":
		info.Hint = facadeErr.Hint
	case errors.As(err, &unknownRef):
		info.Hint = "run snapshot to refresh the ref table"
	}
	return Response{Success: false, Error: info}
}
