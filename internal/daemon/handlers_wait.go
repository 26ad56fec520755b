package daemon

import (
	"context"
	"strconv"
	"time"
)

func init() {
	register("wait", handleWait)
}

func waitTimeout(params map[string]interface{}) time.Duration {
	ms := intFlag(params, "timeout", 30000)
	return time.Duration(ms) * time.Millisecond
}

// handleWait dispatches by which of {text, url, function, selector, state,
// timeout} is present in params, per spec's single multiplexed wait action.
func handleWait(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	timeout := waitTimeout(params)

	switch {
	case stringFlag(params, "selector") != "":
		return nil, page.WaitForSelector(ctx, stringFlag(params, "selector"), timeout)
	case stringFlag(params, "url") != "":
		return nil, page.WaitForURL(ctx, stringFlag(params, "url"), timeout)
	case stringFlag(params, "function") != "":
		return nil, page.WaitForFunction(ctx, stringFlag(params, "function"), timeout)
	case stringFlag(params, "state") != "":
		return nil, page.WaitForLoadState(ctx, stringFlag(params, "state"), timeout)
	case stringFlag(params, "text") != "":
		needle := stringFlag(params, "text")
		script := "return document.body && document.body.innerText.indexOf(" + strconv.Quote(needle) + ") >= 0"
		return nil, page.WaitForFunction(ctx, script, timeout)
	default:
		page.WaitForTimeout(ctx, timeout)
		return nil, nil
	}
}
