package daemon

import (
	"context"
	"strconv"

	"github.com/spel/spel/internal/errs"
	"github.com/spel/spel/internal/facade"
)

func init() {
	register("cookies_get", handleCookiesGet)
	register("cookies_set", handleCookiesSet)
	register("cookies_clear", handleCookiesClear)
	register("storage_get", handleStorageGet)
	register("storage_set", handleStorageSet)
	register("storage_clear", handleStorageClear)
}

func handleCookiesGet(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	if d.state.ctx == nil {
		return nil, &errs.NoPageError{}
	}
	cookies, err := d.state.ctx.Cookies(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"cookies": cookies}, nil
}

func handleCookiesSet(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	if d.state.ctx == nil {
		return nil, &errs.NoPageError{}
	}
	raw, _ := params["cookies"].([]interface{})
	cookies := make([]facade.Cookie, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		cookies = append(cookies, facade.Cookie{
			Name:     stringFlag(m, "name"),
			Value:    stringFlag(m, "value"),
			Domain:   stringFlag(m, "domain"),
			Path:     stringFlag(m, "path"),
			Expires:  floatFlag(m, "expires", 0),
			HTTPOnly: boolFlag(m, "httpOnly", false),
			Secure:   boolFlag(m, "secure", false),
			SameSite: stringFlag(m, "sameSite"),
		})
	}
	if len(cookies) == 0 {
		return nil, &paramError{"cookies"}
	}
	return nil, d.state.ctx.AddCookies(ctx, cookies)
}

func handleCookiesClear(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	if d.state.ctx == nil {
		return nil, &errs.NoPageError{}
	}
	return nil, d.state.ctx.ClearCookies(ctx)
}

// handleStorageGet/Set/Clear cover local vs session storage, keyed by the
// "scope" param ("local" default, or "session").
func storageScript(op, scope, key, value string) string {
	area := "localStorage"
	if scope == "session" {
		area = "sessionStorage"
	}
	switch op {
	case "get":
		return "return " + area + ".getItem(" + strconv.Quote(key) + ")"
	case "set":
		return area + ".setItem(" + strconv.Quote(key) + ", " + strconv.Quote(value) + "); return true"
	case "clear":
		return area + ".clear(); return true"
	}
	return "return null"
}

func handleStorageGet(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	scope := stringFlag(params, "scope")
	value, err := page.EvaluateJS(ctx, storageScript("get", scope, stringFlag(params, "key"), ""))
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"value": value}, nil
}

func handleStorageSet(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	scope := stringFlag(params, "scope")
	_, err = page.EvaluateJS(ctx, storageScript("set", scope, stringFlag(params, "key"), stringFlag(params, "value")))
	return nil, err
}

func handleStorageClear(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	scope := stringFlag(params, "scope")
	_, err = page.EvaluateJS(ctx, storageScript("clear", scope, "", ""))
	return nil, err
}
