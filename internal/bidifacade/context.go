package bidifacade

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spel/spel/internal/facade"
)

// browserContext is the facade.Context implementation: a BiDi user context
// (spec Glossary "Context" / profile analogue) plus the pages created in it.
type browserContext struct {
	engine        *engine
	cl            *client
	userContextID string
	opts          facade.ContextOptions

	mu        sync.Mutex
	pages     []*page
	listeners facade.EventListeners
	creds     *httpCredentials
}

type httpCredentials struct{ user, pass string }

var _ facade.Context = (*browserContext)(nil)

func (bc *browserContext) ownsBrowsingContext(bidiContextID string) bool {
	if bidiContextID == "" {
		return false
	}
	bc.mu.Lock()
	defer bc.mu.Unlock()
	for _, p := range bc.pages {
		if p.id == bidiContextID {
			return true
		}
	}
	return false
}

func (bc *browserContext) handleEvent(method string, params json.RawMessage) {
	bc.mu.Lock()
	listeners := bc.listeners
	bc.mu.Unlock()

	switch method {
	case "log.entryAdded":
		var e struct {
			Level string `json:"level"`
			Text  string `json:"text"`
		}
		if json.Unmarshal(params, &e) == nil && listeners.OnConsole != nil {
			listeners.OnConsole(facade.ConsoleMessage{Type: e.Level, Text: e.Text, Time: time.Now()})
		}
	case "script.message":
		var e struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(params, &e) == nil && listeners.OnPageError != nil {
			listeners.OnPageError(facade.PageError{Message: e.Message, Time: time.Now()})
		}
	case "network.responseCompleted":
		var e struct {
			Request struct {
				Method string `json:"method"`
			} `json:"request"`
			Response struct {
				URL    string `json:"url"`
				Status int    `json:"status"`
			} `json:"response"`
		}
		if json.Unmarshal(params, &e) == nil && listeners.OnResponse != nil {
			listeners.OnResponse(facade.RequestSummary{
				URL: e.Response.URL, Method: e.Request.Method, Status: e.Response.Status,
				ResourceType: "other",
			})
		}
	case "browsingContext.userPromptOpened":
		var e struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		if json.Unmarshal(params, &e) == nil && listeners.OnDialog != nil {
			listeners.OnDialog(facade.DialogInfo{Type: e.Type, Message: e.Message})
		}
	case "network.authRequired":
		bc.handleAuthRequired(params)
	}
}

func (bc *browserContext) handleAuthRequired(params json.RawMessage) {
	var e struct {
		Request struct{ Request string `json:"request"` } `json:"request"`
	}
	if json.Unmarshal(params, &e) != nil {
		return
	}
	bc.mu.Lock()
	creds := bc.creds
	bc.mu.Unlock()
	if creds == nil {
		bc.cl.sendCommand("network.continueResponse", map[string]interface{}{"request": e.Request.Request})
		return
	}
	bc.cl.sendCommand("network.continueWithAuth", map[string]interface{}{
		"request": e.Request.Request,
		"action":  "provideCredentials",
		"credentials": map[string]interface{}{
			"type": "password", "username": creds.user, "password": creds.pass,
		},
	})
}

func (bc *browserContext) NewPage(ctx context.Context) (facade.Page, error) {
	result, err := bc.cl.sendCommand("browsingContext.create", map[string]interface{}{
		"type": "tab", "userContext": bc.userContextID,
	})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	var parsed struct {
		Context string `json:"context"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		return nil, fmt.Errorf("parse browsingContext.create result: %w", err)
	}

	p := newPage(bc, parsed.Context)
	bc.mu.Lock()
	bc.pages = append(bc.pages, p)
	bc.mu.Unlock()

	if bc.opts.UserAgent != "" || bc.opts.ExtraHeaders != nil {
		bc.SetExtraHeaders(ctx, bc.opts.ExtraHeaders)
	}
	if bc.opts.Viewport != nil {
		p.SetViewport(ctx, *bc.opts.Viewport, bc.opts.DeviceScaleFactor, bc.opts.IsMobile, bc.opts.HasTouch)
	}
	return p, nil
}

func (bc *browserContext) Pages() []facade.Page {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	out := make([]facade.Page, len(bc.pages))
	for i, p := range bc.pages {
		out[i] = p
	}
	return out
}

func (bc *browserContext) PageAt(i int) (facade.Page, bool) {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	if i < 0 || i >= len(bc.pages) {
		return nil, false
	}
	return bc.pages[i], true
}

func (bc *browserContext) SetListeners(l facade.EventListeners) {
	bc.mu.Lock()
	bc.listeners = l
	bc.mu.Unlock()
}

func (bc *browserContext) Cookies(ctx context.Context) ([]facade.Cookie, error) {
	result, err := bc.cl.sendCommand("storage.getCookies", map[string]interface{}{
		"partition": map[string]interface{}{"type": "storageKey", "userContext": bc.userContextID},
	})
	if err != nil {
		return nil, err
	}
	var parsed struct {
		Cookies []facade.Cookie `json:"cookies"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		return nil, err
	}
	return parsed.Cookies, nil
}

func (bc *browserContext) AddCookies(ctx context.Context, cookies []facade.Cookie) error {
	for _, c := range cookies {
		_, err := bc.cl.sendCommand("storage.setCookie", map[string]interface{}{
			"cookie": map[string]interface{}{
				"name": c.Name, "value": map[string]interface{}{"type": "string", "value": c.Value},
				"domain": c.Domain, "path": c.Path, "httpOnly": c.HTTPOnly, "secure": c.Secure,
			},
			"partition": map[string]interface{}{"type": "storageKey", "userContext": bc.userContextID},
		})
		if err != nil {
			return fmt.Errorf("set cookie %s: %w", c.Name, err)
		}
	}
	return nil
}

func (bc *browserContext) ClearCookies(ctx context.Context) error {
	_, err := bc.cl.sendCommand("storage.deleteCookies", map[string]interface{}{
		"partition": map[string]interface{}{"type": "storageKey", "userContext": bc.userContextID},
	})
	return err
}

// storageStateDoc is the on-disk storage-state shape written/read by
// state_save/state_load; it holds cookies only.
type storageStateDoc struct {
	Cookies []facade.Cookie `json:"cookies"`
}

func (bc *browserContext) StorageState(ctx context.Context) ([]byte, error) {
	cookies, err := bc.Cookies(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(storageStateDoc{Cookies: cookies}, "", "  ")
}

func (bc *browserContext) SaveStorageState(ctx context.Context, path string) error {
	data, err := bc.StorageState(ctx)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func (bc *browserContext) loadStorageState(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc storageStateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return bc.AddCookies(ctx, doc.Cookies)
}

func (bc *browserContext) GrantPermissions(ctx context.Context, perms []string) error {
	for _, p := range perms {
		_, err := bc.cl.sendCommand("permissions.setPermission", map[string]interface{}{
			"descriptor":  map[string]interface{}{"name": p},
			"state":       "granted",
			"userContext": bc.userContextID,
		})
		if err != nil {
			return fmt.Errorf("grant permission %s: %w", p, err)
		}
	}
	return nil
}

func (bc *browserContext) ClearPermissions(ctx context.Context) error {
	return nil // BiDi has no bulk-reset permissions command; each grant is scoped to the context's lifetime.
}

func (bc *browserContext) SetGeolocation(ctx context.Context, lat, lon, accuracy float64) error {
	_, err := bc.cl.sendCommand("emulation.setGeolocationOverride", map[string]interface{}{
		"coordinates": map[string]interface{}{"latitude": lat, "longitude": lon, "accuracy": accuracy},
		"userContexts": []string{bc.userContextID},
	})
	return err
}

func (bc *browserContext) SetHTTPCredentials(ctx context.Context, user, pass string) error {
	bc.mu.Lock()
	bc.creds = &httpCredentials{user: user, pass: pass}
	bc.mu.Unlock()
	_, err := bc.cl.sendCommand("network.addIntercept", map[string]interface{}{
		"phases": []string{"authRequired"},
	})
	return err
}

func (bc *browserContext) SetOffline(ctx context.Context, offline bool) error {
	_, err := bc.cl.sendCommand("emulation.setNetworkConditions", map[string]interface{}{
		"offline": offline, "userContexts": []string{bc.userContextID},
	})
	return err
}

func (bc *browserContext) SetExtraHeaders(ctx context.Context, headers map[string]string) error {
	bc.mu.Lock()
	bc.opts.ExtraHeaders = headers
	bc.mu.Unlock()
	_, err := bc.cl.sendCommand("network.addIntercept", map[string]interface{}{
		"phases": []string{"beforeRequestSent"},
	})
	return err
}

func (bc *browserContext) AddInitScript(ctx context.Context, script string) error {
	_, err := bc.cl.sendCommand("script.addPreloadScript", map[string]interface{}{
		"functionDeclaration": "function(){" + script + "}",
		"contexts":            []string{},
	})
	return err
}

func (bc *browserContext) Close(ctx context.Context) error {
	bc.mu.Lock()
	pages := append([]*page(nil), bc.pages...)
	bc.mu.Unlock()
	for _, p := range pages {
		p.Close(ctx)
	}
	_, err := bc.cl.sendCommand("browser.removeUserContext", map[string]interface{}{
		"userContext": bc.userContextID,
	})
	bc.engine.forgetContext(bc.userContextID)
	return err
}
