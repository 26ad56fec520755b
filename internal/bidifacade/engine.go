package bidifacade

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/spel/spel/internal/facade"
	"github.com/spel/spel/internal/log"
)

// engine is the facade.Engine implementation: one BiDi client plus the
// subprocess that owns it (nil proc for CDP-connected/attached browsers).
type engine struct {
	proc *process
	cl   *client

	mu       sync.Mutex
	contexts map[string]*browserContext // keyed by BiDi userContext id
}

var _ facade.Engine = (*engine)(nil)

func newEngine(proc *process) (*engine, error) {
	conn, err := connect(proc.webSocketURL)
	if err != nil {
		proc.close()
		return nil, fmt.Errorf("connect bidi: %w", err)
	}
	e := &engine{proc: proc, cl: newClient(conn), contexts: make(map[string]*browserContext)}
	e.cl.onEventFunc(e.routeEvent)
	if _, err := e.cl.sendCommand("session.subscribe", map[string]interface{}{
		"events": []string{
			"log.entryAdded", "script.message", "network.responseCompleted",
			"browsingContext.userPromptOpened", "browsingContext.contextCreated",
			"browsingContext.contextDestroyed", "network.authRequired",
		},
	}); err != nil {
		log.Warn("session.subscribe failed", "err", err)
	}
	return e, nil
}

func (e *engine) NewContext(ctx context.Context, opts facade.ContextOptions) (facade.Context, error) {
	result, err := e.cl.sendCommand("browser.createUserContext", map[string]interface{}{})
	if err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}
	var parsed struct {
		UserContext string `json:"userContext"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		return nil, fmt.Errorf("parse createUserContext result: %w", err)
	}

	bc := &browserContext{engine: e, cl: e.cl, userContextID: parsed.UserContext, opts: opts}
	if opts.StorageStatePath != "" {
		if err := bc.loadStorageState(ctx, opts.StorageStatePath); err != nil {
			log.Warn("failed loading storage state", "path", opts.StorageStatePath, "err", err)
		}
	}

	e.mu.Lock()
	e.contexts[parsed.UserContext] = bc
	e.mu.Unlock()
	return bc, nil
}

// routeEvent fans a raw BiDi event out to the owning browserContext/page.
func (e *engine) routeEvent(method string, params json.RawMessage) {
	var envelope struct {
		Context string `json:"context"`
	}
	_ = json.Unmarshal(params, &envelope)

	e.mu.Lock()
	var target *browserContext
	for _, bc := range e.contexts {
		if bc.ownsBrowsingContext(envelope.Context) {
			target = bc
			break
		}
	}
	e.mu.Unlock()
	if target == nil {
		return
	}
	target.handleEvent(method, params)
}

func (e *engine) forgetContext(id string) {
	e.mu.Lock()
	delete(e.contexts, id)
	e.mu.Unlock()
}

func (e *engine) Close(ctx context.Context) error {
	e.mu.Lock()
	ids := make([]string, 0, len(e.contexts))
	for id := range e.contexts {
		ids = append(ids, id)
	}
	e.mu.Unlock()
	for _, id := range ids {
		if bc, ok := e.contexts[id]; ok {
			bc.Close(ctx)
		}
	}
	if e.cl != nil {
		e.cl.sendCommandTimeout("browser.close", nil, safeCloseTimeout)
		e.cl.close()
	}
	if e.proc != nil {
		e.proc.close()
	}
	return nil
}
