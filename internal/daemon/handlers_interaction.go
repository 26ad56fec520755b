package daemon

import (
	"context"

	"github.com/spel/spel/internal/facade"
)

func init() {
	register("click", handleClick)
	register("dblclick", handleDblClick)
	register("fill", handleFill)
	register("type", handleType)
	register("press", handlePress)
	register("keydown", handleKeyDown)
	register("keyup", handleKeyUp)
	register("hover", handleHover)
	register("check", handleCheck)
	register("uncheck", handleUncheck)
	register("select", handleSelect)
	register("focus", handleFocus)
	register("clear", handleClear)
	register("drag", handleDrag)
	register("upload", handleUpload)
	register("scroll", handleScroll)
	register("scrollintoview", handleScrollIntoView)
	register("highlight", handleHighlight)
}

func clickOptionsFromParams(params map[string]interface{}) facade.ClickOptions {
	opts := facade.ClickOptions{
		Button:     stringFlag(params, "button"),
		ClickCount: intFlag(params, "clickCount", 1),
		Modifiers:  stringSliceFlag(params, "modifiers"),
		Force:      boolFlag(params, "force", false),
	}
	if opts.Button == "" {
		opts.Button = "left"
	}
	if x, ok := params["x"]; ok {
		if y, ok := params["y"]; ok {
			opts.Position = &struct{ X, Y float64 }{toFloat(x), toFloat(y)}
		}
	}
	return opts
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

// locatorFor resolves the "selector" param (ref or CSS) shared by every
// interaction handler.
func locatorFor(ctx context.Context, d *Daemon, page facade.Page, params map[string]interface{}) (facade.Locator, error) {
	selector := stringFlag(params, "selector")
	if selector == "" {
		return nil, &paramError{"selector"}
	}
	return resolveSelector(ctx, d, page, selector)
}

func handleClick(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	return nil, loc.Click(ctx, clickOptionsFromParams(params))
}

func handleDblClick(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	return nil, loc.DblClick(ctx, clickOptionsFromParams(params))
}

func handleFill(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	return nil, loc.Fill(ctx, stringFlag(params, "value"))
}

// handleType supports both page-level typing (no selector) and
// element-level typing via a locator, per spec's "page-level or
// element-level" note for type/press.
func handleType(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	text := stringFlag(params, "text")
	delay := intFlag(params, "delay", 0)
	if sel := stringFlag(params, "selector"); sel != "" {
		loc, err := resolveSelector(ctx, d, page, sel)
		if err != nil {
			return nil, err
		}
		return nil, loc.Type(ctx, text, delay)
	}
	return nil, page.Keyboard().Type(ctx, text, delay)
}

func handlePress(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	key := stringFlag(params, "key")
	if sel := stringFlag(params, "selector"); sel != "" {
		loc, err := resolveSelector(ctx, d, page, sel)
		if err != nil {
			return nil, err
		}
		return nil, loc.Press(ctx, key)
	}
	return nil, page.Keyboard().Press(ctx, key)
}

func handleKeyDown(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	return nil, page.Keyboard().Down(ctx, stringFlag(params, "key"))
}

func handleKeyUp(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	return nil, page.Keyboard().Up(ctx, stringFlag(params, "key"))
}

func handleHover(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	return nil, loc.Hover(ctx)
}

func handleCheck(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	return nil, loc.Check(ctx)
}

func handleUncheck(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	return nil, loc.Uncheck(ctx)
}

func handleSelect(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	values := stringSliceFlag(params, "values")
	if values == nil {
		if v := stringFlag(params, "value"); v != "" {
			values = []string{v}
		}
	}
	return nil, loc.SelectOption(ctx, values)
}

func handleFocus(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	return nil, loc.Focus(ctx)
}

func handleClear(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	return nil, loc.Clear(ctx)
}

func handleDrag(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	src, err := resolveSelector(ctx, d, page, stringFlag(params, "selector"))
	if err != nil {
		return nil, err
	}
	dst, err := resolveSelector(ctx, d, page, stringFlag(params, "target"))
	if err != nil {
		return nil, err
	}
	return nil, src.DragTo(ctx, dst)
}

func handleUpload(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	paths := stringSliceFlag(params, "files")
	return nil, loc.SetInputFiles(ctx, paths)
}

// handleScroll scrolls the page (no selector) or an element into view (with
// selector), per spec's "page or element, by direction+amount" note.
func handleScroll(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	if sel := stringFlag(params, "selector"); sel != "" {
		loc, err := resolveSelector(ctx, d, page, sel)
		if err != nil {
			return nil, err
		}
		return nil, loc.ScrollIntoView(ctx)
	}
	dx := floatFlag(params, "dx", 0)
	dy := floatFlag(params, "dy", floatFlag(params, "amount", 0))
	return nil, page.Mouse().Wheel(ctx, dx, dy)
}

func handleScrollIntoView(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	return nil, loc.ScrollIntoView(ctx)
}

func handleHighlight(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	return nil, loc.Highlight(ctx)
}
