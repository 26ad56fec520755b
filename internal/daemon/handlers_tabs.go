package daemon

import "context"

func init() {
	register("tab_new", handleTabNew)
	register("tab_list", handleTabList)
	register("tab_switch", handleTabSwitch)
	register("tab_close", handleTabClose)
}

func handleTabNew(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := d.state.ctx.NewPage(ctx)
	if err != nil {
		return nil, err
	}
	d.state.attachListeners(page)
	d.state.pages = append(d.state.pages, page)
	d.state.current = len(d.state.pages) - 1

	if url := stringFlag(params, "url"); url != "" {
		if err := page.Navigate(ctx, url); err != nil {
			return nil, err
		}
	}
	return map[string]interface{}{"index": d.state.current, "id": page.ID()}, nil
}

func handleTabList(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	tabs := make([]map[string]interface{}, 0, len(d.state.pages))
	for i, p := range d.state.pages {
		url, _ := p.URL(ctx)
		title, _ := p.Title(ctx)
		tabs = append(tabs, map[string]interface{}{
			"index":   i,
			"id":      p.ID(),
			"url":     url,
			"title":   title,
			"current": i == d.state.current,
		})
	}
	return map[string]interface{}{"tabs": tabs}, nil
}

func handleTabSwitch(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	idx := intFlag(params, "index", -1)
	if idx < 0 || idx >= len(d.state.pages) {
		return nil, &paramError{"index"}
	}
	d.state.current = idx
	d.state.refs.Reset()
	return map[string]interface{}{"index": idx}, nil
}

func handleTabClose(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	idx := intFlag(params, "index", d.state.current)
	if idx < 0 || idx >= len(d.state.pages) {
		return nil, &paramError{"index"}
	}
	page := d.state.pages[idx]
	if err := page.Close(ctx); err != nil {
		return nil, err
	}
	d.state.pages = append(d.state.pages[:idx], d.state.pages[idx+1:]...)
	if len(d.state.pages) == 0 {
		newPage, err := d.state.ctx.NewPage(ctx)
		if err != nil {
			return nil, err
		}
		d.state.attachListeners(newPage)
		d.state.pages = append(d.state.pages, newPage)
	}
	if d.state.current >= len(d.state.pages) {
		d.state.current = len(d.state.pages) - 1
	}
	if d.state.current < 0 {
		d.state.current = 0
	}
	return map[string]interface{}{"remaining": len(d.state.pages)}, nil
}
