package daemon

import "context"

func init() {
	register("trace_start", handleTraceStart)
	register("trace_stop", handleTraceStop)
	register("console_get", handleConsoleGet)
	register("console_clear", handleConsoleClear)
	register("console_start", handleConsoleStart)
	register("errors_get", handleErrorsGet)
	register("errors_clear", handleErrorsClear)
	register("errors_start", handleErrorsStart)
}

func handleTraceStart(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := d.state.currentPage()
	if err != nil {
		return nil, err
	}
	if err := page.TraceStart(ctx); err != nil {
		return nil, err
	}
	d.state.tracing = true
	return nil, nil
}

func handleTraceStop(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := d.state.currentPage()
	if err != nil {
		return nil, err
	}
	path := stringFlag(params, "path")
	if path == "" {
		path = defaultTracePath(d.state.sessionName)
	}
	if err := page.TraceStop(ctx, path); err != nil {
		return nil, err
	}
	d.state.tracing = false
	return map[string]interface{}{"path": path}, nil
}

func handleConsoleGet(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	return map[string]interface{}{"console": d.state.consoleRing.Snapshot()}, nil
}

func handleConsoleClear(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	d.state.consoleRing.Clear()
	return nil, nil
}

// handleConsoleStart is a no-op once a browser exists: console capture runs
// continuously via attachListeners from the moment the page is created.
func handleConsoleStart(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	return nil, nil
}

func handleErrorsGet(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	return map[string]interface{}{"errors": d.state.errorRing.Snapshot()}, nil
}

func handleErrorsClear(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	d.state.errorRing.Clear()
	return nil, nil
}

func handleErrorsStart(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	return nil, nil
}
