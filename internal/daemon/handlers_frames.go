package daemon

import "context"

func init() {
	register("frame_switch", handleFrameSwitch)
	register("frame_list", handleFrameList)
}

func handleFrameList(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	frames, err := page.Frames(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"frames": frames}, nil
}

// handleFrameSwitch scopes later commands to a child frame by resolving it
// now and replacing the current tab's page handle, so every subsequent
// command on this tab, navigation included, targets the frame.
func handleFrameSwitch(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	nameOrURL := stringFlag(params, "frame")
	if nameOrURL == "" {
		return nil, &paramError{"frame"}
	}
	framePage, err := page.Frame(ctx, nameOrURL)
	if err != nil {
		return nil, err
	}
	d.state.pages[d.state.current] = framePage
	d.state.refs.Reset()
	return nil, nil
}
