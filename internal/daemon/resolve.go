package daemon

import (
	"context"
	"regexp"

	"github.com/spel/spel/internal/errs"
	"github.com/spel/spel/internal/facade"
)

// refPattern matches a ref argument in either @eN or bare eN form, with an
// optional frame prefix (f<k>_eN) for elements inside a child frame.
var refPattern = regexp.MustCompile(`^@?(f\d+_)?e\d+$`)

func looksLikeRef(s string) bool {
	return refPattern.MatchString(s)
}

// resolveSelector turns a selector argument into a Locator: refs go through
// the ref table, everything else is handed to the page as a raw selector.
func resolveSelector(ctx context.Context, d *Daemon, page facade.Page, selector string) (facade.Locator, error) {
	if looksLikeRef(selector) {
		return d.state.refs.Resolve(ctx, page, selector)
	}
	return page.Resolve(ctx, selector)
}

// requireNavigatedPage returns the current page, failing with NoPageError
// if it is still about:blank (spec's "handlers that touch the page" rule).
func requireNavigatedPage(ctx context.Context, d *Daemon) (facade.Page, error) {
	page, err := d.state.currentPage()
	if err != nil {
		return nil, err
	}
	url, _ := page.URL(ctx)
	if url == "" || url == "about:blank" {
		return nil, &errs.NoPageError{}
	}
	return page, nil
}
