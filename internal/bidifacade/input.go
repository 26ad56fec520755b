package bidifacade

import (
	"context"
)

// keyboard, mouse and touchscreen all drive input.performActions, the one
// BiDi command for synthetic input; each call is a single-source action
// sequence, matching how the teacher's internal/bidi/input.go shapes a
// Playwright-style call into a single dispatch.
type keyboard struct{ p *page }
type mouse struct{ p *page }
type touchscreen struct{ p *page }

func (p *page) performActions(actions []map[string]interface{}) error {
	_, err := p.cl.sendCommand("input.performActions", map[string]interface{}{
		"context": p.id,
		"actions": actions,
	})
	return err
}

func keySource(id string, actions []map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"type": "key", "id": id, "actions": actions}
}

func pointerSource(id string, actions []map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type": "pointer", "id": id,
		"parameters": map[string]interface{}{"pointerType": "mouse"},
		"actions":    actions,
	}
}

func (k *keyboard) Down(ctx context.Context, key string) error {
	return k.p.performActions([]map[string]interface{}{
		keySource("keyboard", []map[string]interface{}{{"type": "keyDown", "value": key}}),
	})
}

func (k *keyboard) Up(ctx context.Context, key string) error {
	return k.p.performActions([]map[string]interface{}{
		keySource("keyboard", []map[string]interface{}{{"type": "keyUp", "value": key}}),
	})
}

func (k *keyboard) Press(ctx context.Context, key string) error {
	return k.p.performActions([]map[string]interface{}{
		keySource("keyboard", []map[string]interface{}{
			{"type": "keyDown", "value": key},
			{"type": "keyUp", "value": key},
		}),
	})
}

func (k *keyboard) Type(ctx context.Context, text string, delayMS int) error {
	actions := make([]map[string]interface{}, 0, len(text)*2)
	for _, r := range text {
		ch := string(r)
		actions = append(actions,
			map[string]interface{}{"type": "keyDown", "value": ch},
			map[string]interface{}{"type": "keyUp", "value": ch},
		)
		if delayMS > 0 {
			actions = append(actions, map[string]interface{}{"type": "pause", "duration": delayMS})
		}
	}
	return k.p.performActions([]map[string]interface{}{keySource("keyboard", actions)})
}

func (m *mouse) Move(ctx context.Context, x, y float64) error {
	return m.p.performActions([]map[string]interface{}{
		pointerSource("mouse", []map[string]interface{}{
			{"type": "pointerMove", "x": int(x), "y": int(y), "origin": "viewport"},
		}),
	})
}

func (m *mouse) Down(ctx context.Context, button string) error {
	return m.p.performActions([]map[string]interface{}{
		pointerSource("mouse", []map[string]interface{}{
			{"type": "pointerDown", "button": pointerButtonCode(button)},
		}),
	})
}

func (m *mouse) Up(ctx context.Context, button string) error {
	return m.p.performActions([]map[string]interface{}{
		pointerSource("mouse", []map[string]interface{}{
			{"type": "pointerUp", "button": pointerButtonCode(button)},
		}),
	})
}

func (m *mouse) Wheel(ctx context.Context, dx, dy float64) error {
	_, err := m.p.callFunction(`function(dx, dy){ window.scrollBy(dx, dy) }`, dx, dy)
	return err
}

func (t *touchscreen) Tap(ctx context.Context, x, y float64) error {
	return t.p.performActions([]map[string]interface{}{
		{
			"type": "pointer", "id": "touch",
			"parameters": map[string]interface{}{"pointerType": "touch"},
			"actions": []map[string]interface{}{
				{"type": "pointerMove", "x": int(x), "y": int(y), "origin": "viewport"},
				{"type": "pointerDown", "button": 0},
				{"type": "pointerUp", "button": 0},
			},
		},
	})
}

func pointerButtonCode(button string) int {
	switch button {
	case "right":
		return 2
	case "middle":
		return 1
	default:
		return 0
	}
}

// performClick moves the pointer to (x,y) and issues count down/up pairs,
// the shape Playwright's own clickCount semantics use.
func performClick(p *page, x, y float64, button string, count int) error {
	actions := []map[string]interface{}{
		{"type": "pointerMove", "x": int(x), "y": int(y), "origin": "viewport"},
	}
	code := pointerButtonCode(button)
	for i := 0; i < count; i++ {
		actions = append(actions,
			map[string]interface{}{"type": "pointerDown", "button": code},
			map[string]interface{}{"type": "pointerUp", "button": code},
		)
	}
	return p.performActions([]map[string]interface{}{pointerSource("mouse", actions)})
}

func performDrag(p *page, sx, sy, dx, dy float64) error {
	actions := []map[string]interface{}{
		{"type": "pointerMove", "x": int(sx), "y": int(sy), "origin": "viewport"},
		{"type": "pointerDown", "button": 0},
		{"type": "pointerMove", "x": int(dx), "y": int(dy), "origin": "viewport", "duration": 200},
		{"type": "pointerUp", "button": 0},
	}
	return p.performActions([]map[string]interface{}{pointerSource("mouse", actions)})
}
