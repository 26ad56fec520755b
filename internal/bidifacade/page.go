package bidifacade

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spel/spel/internal/facade"
)

// page is the facade.Page implementation: one BiDi browsingContext (tab).
type page struct {
	bc *browserContext
	cl *client
	id string

	mu             sync.Mutex
	defaultTimeout time.Duration
	dialogHandler  func(facade.DialogInfo) (bool, string)
	routes         map[string]func(facade.RouteRequest) facade.RouteDecision

	keyboard    *keyboard
	mouse       *mouse
	touchscreen *touchscreen
}

var _ facade.Page = (*page)(nil)

func newPage(bc *browserContext, id string) *page {
	p := &page{bc: bc, cl: bc.cl, id: id, defaultTimeout: 30 * time.Second, routes: make(map[string]func(facade.RouteRequest) facade.RouteDecision)}
	p.keyboard = &keyboard{p: p}
	p.mouse = &mouse{p: p}
	p.touchscreen = &touchscreen{p: p}
	return p
}

func (p *page) ID() string { return p.id }

func (p *page) Navigate(ctx context.Context, url string) error {
	_, err := p.cl.sendCommand("browsingContext.navigate", map[string]interface{}{
		"context": p.id, "url": url, "wait": "complete",
	})
	return err
}

func (p *page) Reload(ctx context.Context) error {
	_, err := p.cl.sendCommand("browsingContext.reload", map[string]interface{}{
		"context": p.id, "wait": "complete",
	})
	return err
}

func (p *page) Back(ctx context.Context) error {
	_, err := p.cl.sendCommand("browsingContext.traverseHistory", map[string]interface{}{
		"context": p.id, "delta": -1,
	})
	return err
}

func (p *page) Forward(ctx context.Context) error {
	_, err := p.cl.sendCommand("browsingContext.traverseHistory", map[string]interface{}{
		"context": p.id, "delta": 1,
	})
	return err
}

func (p *page) snapshotTree() (map[string]interface{}, error) {
	result, err := p.cl.sendCommand("browsingContext.getTree", map[string]interface{}{
		"root": p.id,
	})
	if err != nil {
		return nil, err
	}
	var parsed struct {
		Contexts []map[string]interface{} `json:"contexts"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil || len(parsed.Contexts) == 0 {
		return nil, fmt.Errorf("browsingContext.getTree returned no contexts")
	}
	return parsed.Contexts[0], nil
}

func (p *page) URL(ctx context.Context) (string, error) {
	tree, err := p.snapshotTree()
	if err != nil {
		return "", err
	}
	url, _ := tree["url"].(string)
	return url, nil
}

func (p *page) Title(ctx context.Context) (string, error) {
	return p.callFunctionString("function(){ return document.title }")
}

func (p *page) Content(ctx context.Context) (string, error) {
	return p.callFunctionString("function(){ return document.documentElement.outerHTML }")
}

func (p *page) Viewport(ctx context.Context) (facade.ViewportSize, error) {
	w, err := p.callFunctionNumber("function(){ return window.innerWidth }")
	if err != nil {
		return facade.ViewportSize{}, err
	}
	h, err := p.callFunctionNumber("function(){ return window.innerHeight }")
	if err != nil {
		return facade.ViewportSize{}, err
	}
	return facade.ViewportSize{Width: int(w), Height: int(h)}, nil
}

func (p *page) SetViewport(ctx context.Context, size facade.ViewportSize, dpr float64, mobile, touch bool) error {
	params := map[string]interface{}{
		"context": p.id,
		"viewport": map[string]interface{}{"width": size.Width, "height": size.Height},
	}
	if dpr > 0 {
		params["devicePixelRatio"] = dpr
	}
	_, err := p.cl.sendCommand("browsingContext.setViewport", params)
	return err
}

func (p *page) SetDefaultTimeout(d time.Duration) {
	p.mu.Lock()
	p.defaultTimeout = d
	p.mu.Unlock()
}

func (p *page) getTimeout() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.defaultTimeout
}

func (p *page) EmulateMedia(ctx context.Context, media, colorScheme string) error {
	_, err := p.cl.sendCommand("emulation.setScreenOrientationOverride", map[string]interface{}{
		"contexts": []string{p.id}, "media": media, "colorScheme": colorScheme,
	})
	return err
}

func (p *page) AddScriptTag(ctx context.Context, source string) error {
	_, err := p.callFunction(`function(src){
		var s = document.createElement('script'); s.textContent = src;
		document.head.appendChild(s);
	}`, source)
	return err
}

func (p *page) AddStyleTag(ctx context.Context, source string) error {
	_, err := p.callFunction(`function(src){
		var s = document.createElement('style'); s.textContent = src;
		document.head.appendChild(s);
	}`, source)
	return err
}

func (p *page) EvaluateJS(ctx context.Context, script string, args ...interface{}) (interface{}, error) {
	raw, err := p.callFunction("function(){ "+script+" }", args...)
	if err != nil {
		return nil, err
	}
	var v interface{}
	if len(raw) > 0 {
		json.Unmarshal(raw, &v)
	}
	return v, nil
}

func (p *page) Screenshot(ctx context.Context, fullPage bool, clip *facade.Box) ([]byte, error) {
	params := map[string]interface{}{"context": p.id, "origin": "viewport"}
	if fullPage {
		params["origin"] = "document"
	}
	if clip != nil {
		params["clip"] = map[string]interface{}{
			"type": "box", "x": clip.X, "y": clip.Y, "width": clip.Width, "height": clip.Height,
		}
	}
	result, err := p.cl.sendCommand("browsingContext.captureScreenshot", params)
	if err != nil {
		return nil, err
	}
	return decodeBase64Result(result)
}

func (p *page) PDF(ctx context.Context) ([]byte, error) {
	result, err := p.cl.sendCommand("browsingContext.print", map[string]interface{}{
		"context": p.id, "background": true,
	})
	if err != nil {
		return nil, err
	}
	return decodeBase64Result(result)
}

func (p *page) Resolve(ctx context.Context, selector string) (facade.Locator, error) {
	return &locator{p: p, selector: selector}, nil
}

func (p *page) Find(ctx context.Context, opts facade.FindOptions) (facade.Locator, error) {
	sel, err := buildFindSelector(opts)
	if err != nil {
		return nil, err
	}
	return &locator{p: p, selector: sel, nth: opts.Nth}, nil
}

func (p *page) FindAll(ctx context.Context, opts facade.FindOptions) ([]facade.Locator, error) {
	sel, err := buildFindSelector(opts)
	if err != nil {
		return nil, err
	}
	count, err := (&locator{p: p, selector: sel}).Count(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]facade.Locator, count)
	for i := 0; i < count; i++ {
		out[i] = &locator{p: p, selector: sel, nth: i}
	}
	return out, nil
}

func (p *page) Keyboard() facade.Keyboard       { return p.keyboard }
func (p *page) Mouse() facade.Mouse             { return p.mouse }
func (p *page) Touchscreen() facade.Touchscreen { return p.touchscreen }

func (p *page) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	return pollUntil(timeout, func() (bool, error) {
		count, err := (&locator{p: p, selector: selector}).Count(ctx)
		return count > 0, err
	})
}

func (p *page) WaitForURL(ctx context.Context, pattern string, timeout time.Duration) error {
	return pollUntil(timeout, func() (bool, error) {
		url, err := p.URL(ctx)
		if err != nil {
			return false, err
		}
		return matchURLPattern(pattern, url), nil
	})
}

func (p *page) WaitForFunction(ctx context.Context, script string, timeout time.Duration) error {
	return pollUntil(timeout, func() (bool, error) {
		return p.callFunctionBool("function(){ return !!(" + script + ") }")
	})
}

func (p *page) WaitForLoadState(ctx context.Context, state string, timeout time.Duration) error {
	want := "complete"
	if state == "domcontentloaded" {
		want = "interactive"
	}
	return pollUntil(timeout, func() (bool, error) {
		ready, err := p.callFunctionString("function(){ return document.readyState }")
		if err != nil {
			return false, err
		}
		return ready == want || ready == "complete", nil
	})
}

func (p *page) WaitForTimeout(ctx context.Context, d time.Duration) {
	time.Sleep(d)
}

func (p *page) Route(ctx context.Context, pattern string, handler func(facade.RouteRequest) facade.RouteDecision) error {
	p.mu.Lock()
	p.routes[pattern] = handler
	p.mu.Unlock()
	_, err := p.cl.sendCommand("network.addIntercept", map[string]interface{}{
		"phases": []string{"beforeRequestSent"}, "contexts": []string{p.id},
	})
	return err
}

func (p *page) Unroute(ctx context.Context, pattern string) error {
	p.mu.Lock()
	delete(p.routes, pattern)
	p.mu.Unlock()
	return nil
}

func (p *page) SetDialogHandler(ctx context.Context, fn func(facade.DialogInfo) (bool, string)) error {
	p.mu.Lock()
	p.dialogHandler = fn
	p.mu.Unlock()
	return nil
}

func (p *page) Frames(ctx context.Context) ([]facade.FrameInfo, error) {
	tree, err := p.snapshotTree()
	if err != nil {
		return nil, err
	}
	children, _ := tree["children"].([]interface{})
	out := make([]facade.FrameInfo, 0, len(children))
	for i, c := range children {
		cm, ok := c.(map[string]interface{})
		if !ok {
			continue
		}
		url, _ := cm["url"].(string)
		out = append(out, facade.FrameInfo{Ordinal: i, URL: url})
	}
	return out, nil
}

func (p *page) Frame(ctx context.Context, nameOrURLSubstring string) (facade.Page, error) {
	tree, err := p.snapshotTree()
	if err != nil {
		return nil, err
	}
	children, _ := tree["children"].([]interface{})
	for _, c := range children {
		cm, ok := c.(map[string]interface{})
		if !ok {
			continue
		}
		url, _ := cm["url"].(string)
		id, _ := cm["context"].(string)
		if nameOrURLSubstring == "" || strings.Contains(url, nameOrURLSubstring) {
			return newPage(p.bc, id), nil
		}
	}
	return nil, fmt.Errorf("no frame matching %q", nameOrURLSubstring)
}

func (p *page) TraceStart(ctx context.Context) error {
	_, err := p.cl.sendCommand("browser.startTracing", map[string]interface{}{"contexts": []string{p.id}})
	return err
}

func (p *page) TraceStop(ctx context.Context, path string) error {
	result, err := p.cl.sendCommand("browser.stopTracing", map[string]interface{}{"contexts": []string{p.id}})
	if err != nil {
		return err
	}
	data, err := decodeBase64Result(result)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

func (p *page) Close(ctx context.Context) error {
	_, err := p.cl.sendCommand("browsingContext.close", map[string]interface{}{"context": p.id})
	p.bc.mu.Lock()
	for i, pg := range p.bc.pages {
		if pg == p {
			p.bc.pages = append(p.bc.pages[:i], p.bc.pages[i+1:]...)
			break
		}
	}
	p.bc.mu.Unlock()
	return err
}
