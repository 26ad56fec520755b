package daemon

import "context"

func init() {
	register("get_text", handleGetText)
	register("get_attribute", handleGetAttribute)
	register("get_value", handleGetValue)
	register("get_count", handleGetCount)
	register("get_box", handleGetBox)
	register("bounding_box", handleGetBox)
	register("count", handleGetCount)
	register("is_visible", handleIsVisible)
	register("is_enabled", handleIsEnabled)
	register("is_checked", handleIsChecked)
}

func handleGetText(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	text, err := loc.Text(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"text": text}, nil
}

func handleGetAttribute(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	value, ok, err := loc.GetAttribute(ctx, stringFlag(params, "name"))
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"value": value, "present": ok}, nil
}

func handleGetValue(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	value, err := loc.InputValue(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"value": value}, nil
}

func handleGetCount(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	count, err := loc.Count(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"count": count}, nil
}

func handleGetBox(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	box, err := loc.BoundingBox(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"x": box.X, "y": box.Y, "width": box.Width, "height": box.Height}, nil
}

func handleIsVisible(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	visible, err := loc.IsVisible(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"visible": visible}, nil
}

func handleIsEnabled(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	enabled, err := loc.IsEnabled(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"enabled": enabled}, nil
}

func handleIsChecked(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := locatorFor(ctx, d, page, params)
	if err != nil {
		return nil, err
	}
	checked, err := loc.IsChecked(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"checked": checked}, nil
}
