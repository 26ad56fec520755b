package daemon

import (
	"context"
	"fmt"

	"github.com/spel/spel/internal/facade"
	"github.com/spel/spel/internal/snapshot"
)

func init() {
	register("navigate", handleNavigate)
	register("open", handleNavigate)
	register("goto", handleNavigate)
	register("back", handleBack)
	register("forward", handleForward)
	register("reload", handleReload)
	register("url", handleURL)
	register("title", handleTitle)
	register("content", handleContent)
}

// handleNavigate serves navigate/open/goto. Per the client-facing "open"
// alias, the result bundles title and a fresh unfiltered snapshot so a
// fresh session's first command returns everything needed to orient.
func handleNavigate(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	target := stringFlag(params, "url")
	if target == "" {
		return nil, &paramError{"url"}
	}
	page, err := d.state.currentPage()
	if err != nil {
		return nil, err
	}
	if err := page.Navigate(ctx, target); err != nil {
		return nil, err
	}
	d.state.lastURL = target

	result := map[string]interface{}{"url": target}
	if actualURL, err := page.URL(ctx); err == nil && actualURL != "" {
		result["url"] = actualURL
	}
	if title, err := page.Title(ctx); err == nil {
		result["title"] = title
	}

	tree, err := snapshot.CaptureAll(ctx, page, "")
	if err == nil {
		d.state.refs.Populate(tree.Root)
		result["snapshot"] = snapshot.Render(tree.Root, snapshot.Filters{})
	}
	return result, nil
}

func handleBack(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	if err := page.Back(ctx); err != nil {
		return nil, err
	}
	return emptyResult(ctx, page)
}

func handleForward(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	if err := page.Forward(ctx); err != nil {
		return nil, err
	}
	return emptyResult(ctx, page)
}

func handleReload(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	if err := page.Reload(ctx); err != nil {
		return nil, err
	}
	return emptyResult(ctx, page)
}

func handleURL(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := d.state.currentPage()
	if err != nil {
		return nil, err
	}
	url, err := page.URL(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"url": url}, nil
}

func handleTitle(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	title, err := page.Title(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"title": title}, nil
}

func handleContent(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	html, err := page.Content(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"content": html}, nil
}

func emptyResult(ctx context.Context, page facade.Page) (interface{}, error) {
	url, _ := page.URL(ctx)
	return map[string]interface{}{"url": url}, nil
}

// paramError reports a missing required parameter; it satisfies error
// without needing its own entry in internal/errs since it never crosses
// the daemon/client boundary as a distinguishable kind.
type paramError struct{ name string }

func (e *paramError) Error() string { return fmt.Sprintf("missing required parameter %q", e.name) }
