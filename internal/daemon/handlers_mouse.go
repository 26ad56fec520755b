package daemon

import "context"

func init() {
	register("mouse_move", handleMouseMove)
	register("mouse_down", handleMouseDown)
	register("mouse_up", handleMouseUp)
	register("mouse_wheel", handleMouseWheel)
	register("tap", handleTap)
}

func handleMouseMove(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	return nil, page.Mouse().Move(ctx, floatFlag(params, "x", 0), floatFlag(params, "y", 0))
}

func handleMouseDown(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	button := stringFlag(params, "button")
	if button == "" {
		button = "left"
	}
	return nil, page.Mouse().Down(ctx, button)
}

func handleMouseUp(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	button := stringFlag(params, "button")
	if button == "" {
		button = "left"
	}
	return nil, page.Mouse().Up(ctx, button)
}

func handleMouseWheel(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	return nil, page.Mouse().Wheel(ctx, floatFlag(params, "dx", 0), floatFlag(params, "dy", 0))
}

func handleTap(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	return nil, page.Touchscreen().Tap(ctx, floatFlag(params, "x", 0), floatFlag(params, "y", 0))
}
