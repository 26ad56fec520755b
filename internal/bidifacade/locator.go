package bidifacade

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spel/spel/internal/facade"
)

// locator is the facade.Locator implementation: a selector resolved lazily
// on every call, never a cached element handle, per Glossary "Locator".
type locator struct {
	p        *page
	selector string
	nth      int // -1 means "no index constraint", set by Find (index 0 default)
}

var _ facade.Locator = (*locator)(nil)

// resolveAllJS returns the matching element array for a selector, handling
// both ordinary CSS and the ":-spel-text(...)" pseudo-selector buildFindSelector
// emits for text-content lookups.
const resolveAllJS = `function(sel){
	var m = /^:-spel-text\("((?:[^"\\]|\\.)*)"\)$/.exec(sel);
	if (m) {
		var needle = m[1].replace(/\\"/g, '"').replace(/\\\\/g, '\\').toLowerCase();
		var all = document.querySelectorAll('*');
		var out = [];
		for (var i = 0; i < all.length; i++) {
			var t = (all[i].textContent || '').trim().toLowerCase();
			if (t.indexOf(needle) !== -1) out.push(all[i]);
		}
		return out;
	}
	return Array.prototype.slice.call(document.querySelectorAll(sel));
}`

func (l *locator) nthOrZero() int {
	if l.nth < 0 {
		return 0
	}
	return l.nth
}

// call evaluates a function against the resolved element, e.g.
// "function(el){ el.click() }".
func (l *locator) call(elementFn string, extra ...interface{}) (json.RawMessage, error) {
	args := append([]interface{}{l.selector, l.nthOrZero()}, extra...)
	wrapper := fmt.Sprintf(`function(sel, idx){
		var resolve = %s;
		var els = resolve(sel);
		var el = els[idx];
		if (!el) throw new Error('element not found: ' + sel);
		var fn = %s;
		var rest = Array.prototype.slice.call(arguments, 2);
		return fn.apply(null, [el].concat(rest));
	}`, resolveAllJS, elementFn)
	return l.p.callFunction(wrapper, args...)
}

func (l *locator) Click(ctx context.Context, opts facade.ClickOptions) error {
	box, err := l.BoundingBox(ctx)
	if err != nil {
		return err
	}
	x, y := float64(box.X)+float64(box.Width)/2, float64(box.Y)+float64(box.Height)/2
	if opts.Position != nil {
		x, y = float64(box.X)+opts.Position.X, float64(box.Y)+opts.Position.Y
	}
	button := opts.Button
	if button == "" {
		button = "left"
	}
	count := opts.ClickCount
	if count == 0 {
		count = 1
	}
	return performClick(l.p, x, y, button, count)
}

func (l *locator) DblClick(ctx context.Context, opts facade.ClickOptions) error {
	opts.ClickCount = 2
	return l.Click(ctx, opts)
}

func (l *locator) Fill(ctx context.Context, value string) error {
	_, err := l.call(`function(el, v){
		el.focus();
		el.value = v;
		el.dispatchEvent(new Event('input', {bubbles:true}));
		el.dispatchEvent(new Event('change', {bubbles:true}));
	}`, value)
	return err
}

func (l *locator) Type(ctx context.Context, text string, delayMS int) error {
	if err := l.Focus(ctx); err != nil {
		return err
	}
	return l.p.keyboard.Type(ctx, text, delayMS)
}

func (l *locator) Press(ctx context.Context, key string) error {
	if err := l.Focus(ctx); err != nil {
		return err
	}
	return l.p.keyboard.Press(ctx, key)
}

func (l *locator) Clear(ctx context.Context) error {
	return l.Fill(ctx, "")
}

func (l *locator) Check(ctx context.Context) error {
	_, err := l.call(`function(el){ if (!el.checked) el.click(); }`)
	return err
}

func (l *locator) Uncheck(ctx context.Context) error {
	_, err := l.call(`function(el){ if (el.checked) el.click(); }`)
	return err
}

func (l *locator) Hover(ctx context.Context) error {
	box, err := l.BoundingBox(ctx)
	if err != nil {
		return err
	}
	x, y := float64(box.X)+float64(box.Width)/2, float64(box.Y)+float64(box.Height)/2
	return l.p.mouse.Move(ctx, x, y)
}

func (l *locator) Focus(ctx context.Context) error {
	_, err := l.call(`function(el){ el.focus() }`)
	return err
}

func (l *locator) SelectOption(ctx context.Context, values []string) error {
	_, err := l.call(`function(el, vals){
		var set = {};
		vals.forEach(function(v){ set[v] = true; });
		for (var i = 0; i < el.options.length; i++) {
			el.options[i].selected = !!set[el.options[i].value];
		}
		el.dispatchEvent(new Event('change', {bubbles:true}));
	}`, values)
	return err
}

func (l *locator) DragTo(ctx context.Context, target facade.Locator) error {
	tgt, ok := target.(*locator)
	if !ok {
		return fmt.Errorf("drag target must be a locator from the same page")
	}
	srcBox, err := l.BoundingBox(ctx)
	if err != nil {
		return err
	}
	dstBox, err := tgt.BoundingBox(ctx)
	if err != nil {
		return err
	}
	sx, sy := float64(srcBox.X)+float64(srcBox.Width)/2, float64(srcBox.Y)+float64(srcBox.Height)/2
	dx, dy := float64(dstBox.X)+float64(dstBox.Width)/2, float64(dstBox.Y)+float64(dstBox.Height)/2
	return performDrag(l.p, sx, sy, dx, dy)
}

func (l *locator) SetInputFiles(ctx context.Context, paths []string) error {
	_, err := l.p.cl.sendCommand("input.setFiles", map[string]interface{}{
		"context": l.p.id,
		"element": map[string]interface{}{"sharedId": l.selector},
		"files":   paths,
	})
	return err
}

func (l *locator) ScrollIntoView(ctx context.Context) error {
	_, err := l.call(`function(el){ el.scrollIntoView({block:'center', inline:'center'}) }`)
	return err
}

func (l *locator) Highlight(ctx context.Context) error {
	_, err := l.call(`function(el){
		el.style.outline = '2px solid #ff4081';
		el.style.outlineOffset = '1px';
	}`)
	return err
}

func (l *locator) Text(ctx context.Context) (string, error) {
	raw, err := l.call(`function(el){ return (el.innerText !== undefined ? el.innerText : el.textContent) || '' }`)
	return decodeString(raw, err)
}

func (l *locator) InnerHTML(ctx context.Context) (string, error) {
	raw, err := l.call(`function(el){ return el.innerHTML }`)
	return decodeString(raw, err)
}

func (l *locator) InputValue(ctx context.Context) (string, error) {
	raw, err := l.call(`function(el){ return el.value || '' }`)
	return decodeString(raw, err)
}

func (l *locator) GetAttribute(ctx context.Context, name string) (string, bool, error) {
	raw, err := l.call(`function(el, n){ return el.hasAttribute(n) ? el.getAttribute(n) : null }`, name)
	if err != nil {
		return "", false, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return "", false, nil
	}
	var s string
	json.Unmarshal(raw, &s)
	return s, true, nil
}

func (l *locator) IsVisible(ctx context.Context) (bool, error) {
	raw, err := l.call(`function(el){
		var r = el.getBoundingClientRect();
		var style = getComputedStyle(el);
		return r.width > 0 && r.height > 0 && style.visibility !== 'hidden' && style.display !== 'none';
	}`)
	return decodeBool(raw, err)
}

func (l *locator) IsEnabled(ctx context.Context) (bool, error) {
	raw, err := l.call(`function(el){ return !el.disabled }`)
	return decodeBool(raw, err)
}

func (l *locator) IsChecked(ctx context.Context) (bool, error) {
	raw, err := l.call(`function(el){ return !!el.checked }`)
	return decodeBool(raw, err)
}

func (l *locator) Count(ctx context.Context) (int, error) {
	raw, err := l.p.callFunction(fmt.Sprintf(`function(sel){
		var resolve = %s;
		return resolve(sel).length;
	}`, resolveAllJS), l.selector)
	if err != nil {
		return 0, err
	}
	var n float64
	json.Unmarshal(raw, &n)
	return int(n), nil
}

func (l *locator) BoundingBox(ctx context.Context) (facade.Box, error) {
	raw, err := l.call(`function(el){
		var r = el.getBoundingClientRect();
		return {x: Math.round(r.x), y: Math.round(r.y), width: Math.round(r.width), height: Math.round(r.height)};
	}`)
	if err != nil {
		return facade.Box{}, err
	}
	var box facade.Box
	if err := json.Unmarshal(raw, &box); err != nil {
		return facade.Box{}, fmt.Errorf("parse bounding box: %w", err)
	}
	return box, nil
}

func (l *locator) Screenshot(ctx context.Context) ([]byte, error) {
	box, err := l.BoundingBox(ctx)
	if err != nil {
		return nil, err
	}
	return l.p.Screenshot(ctx, false, &box)
}

func (l *locator) Evaluate(ctx context.Context, script string) (interface{}, error) {
	raw, err := l.call("function(el){ " + strings.TrimSpace(script) + " }")
	if err != nil {
		return nil, err
	}
	var v interface{}
	if len(raw) > 0 {
		json.Unmarshal(raw, &v)
	}
	return v, nil
}

func decodeString(raw json.RawMessage, err error) (string, error) {
	if err != nil {
		return "", err
	}
	var s string
	if len(raw) > 0 {
		json.Unmarshal(raw, &s)
	}
	return s, nil
}

func decodeBool(raw json.RawMessage, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	var b bool
	if len(raw) > 0 {
		json.Unmarshal(raw, &b)
	}
	return b, nil
}
