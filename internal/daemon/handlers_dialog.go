package daemon

import (
	"context"

	"github.com/spel/spel/internal/facade"
)

func init() {
	register("dialog_accept", handleDialogAccept)
	register("dialog_dismiss", handleDialogDismiss)
}

// handleDialogAccept installs a one-shot-style handler that accepts the
// next dialog (and every dialog after it, until replaced), optionally
// supplying prompt text. Installing replaces any previous handler, per
// spec's dialog-handler note.
func handleDialogAccept(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	text := stringFlag(params, "text")
	d.state.dialogHandler = func(facade.DialogInfo) (bool, string) { return true, text }
	page, err := d.state.currentPage()
	if err != nil {
		return nil, err
	}
	return nil, page.SetDialogHandler(ctx, d.state.dialogHandler)
}

func handleDialogDismiss(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	d.state.dialogHandler = func(facade.DialogInfo) (bool, string) { return false, "" }
	page, err := d.state.currentPage()
	if err != nil {
		return nil, err
	}
	return nil, page.SetDialogHandler(ctx, d.state.dialogHandler)
}
