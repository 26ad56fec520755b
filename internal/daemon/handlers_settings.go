package daemon

import (
	"context"
	"time"

	"github.com/spel/spel/internal/errs"
	"github.com/spel/spel/internal/facade"
)

func msToDuration(ms int) time.Duration { return time.Duration(ms) * time.Millisecond }

func init() {
	register("set_viewport", handleSetViewport)
	register("set_device", handleSetDevice)
	register("set_geo", handleSetGeo)
	register("set_offline", handleSetOffline)
	register("set_headers", handleSetHeaders)
	register("set_media", handleSetMedia)
	register("set_credentials", handleSetCredentials)
	register("set_default_timeout", handleSetDefaultTimeout)
}

func handleSetViewport(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := d.state.currentPage()
	if err != nil {
		return nil, err
	}
	size := facade.ViewportSize{Width: intFlag(params, "width", 1280), Height: intFlag(params, "height", 720)}
	dpr := floatFlag(params, "dpr", 1)
	mobile := boolFlag(params, "mobile", false)
	touch := boolFlag(params, "touch", false)
	return nil, page.SetViewport(ctx, size, dpr, mobile, touch)
}

// device is one entry of the named device-preset table (spec's "~9
// devices"); values follow common mobile/tablet/desktop emulation presets.
type device struct {
	Width, Height int
	DPR           float64
	Mobile, Touch bool
	UserAgent     string
}

var devicePresets = map[string]device{
	"iPhone 12":          {390, 844, 3, true, true, "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"},
	"iPhone SE":          {375, 667, 2, true, true, "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"},
	"Pixel 5":            {393, 851, 2.75, true, true, "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.91 Mobile Safari/537.36"},
	"Galaxy S9+":         {320, 658, 4.5, true, true, "Mozilla/5.0 (Linux; Android 8.0.0; SM-G965F) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.91 Mobile Safari/537.36"},
	"iPad":               {810, 1080, 2, true, true, "Mozilla/5.0 (iPad; CPU OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"},
	"iPad Pro":           {1024, 1366, 2, true, true, "Mozilla/5.0 (iPad; CPU OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"},
	"Desktop Chrome":     {1920, 1080, 1, false, false, ""},
	"Desktop Firefox":    {1920, 1080, 1, false, false, ""},
	"Desktop Small":      {1366, 768, 1, false, false, ""},
}

func handleSetDevice(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	name := stringFlag(params, "name")
	dev, ok := devicePresets[name]
	if !ok {
		return nil, &paramError{"name:" + name}
	}

	flags := d.state.launchFlags
	opts := contextOptionsFromFlags(flags)
	opts.Viewport = &facade.ViewportSize{Width: dev.Width, Height: dev.Height}
	opts.DeviceScaleFactor = dev.DPR
	opts.IsMobile = dev.Mobile
	opts.HasTouch = dev.Touch
	if dev.UserAgent != "" {
		opts.UserAgent = dev.UserAgent
	}

	if err := d.state.recreateContext(ctx, opts, defaultTracePath(d.state.sessionName)); err != nil {
		return nil, err
	}
	return map[string]interface{}{"device": name}, nil
}

func handleSetGeo(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	if d.state.ctx == nil {
		return nil, &errs.NoPageError{}
	}
	lat := floatFlag(params, "lat", 0)
	lon := floatFlag(params, "lon", 0)
	accuracy := floatFlag(params, "accuracy", 0)
	return nil, d.state.ctx.SetGeolocation(ctx, lat, lon, accuracy)
}

func handleSetOffline(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	if d.state.ctx == nil {
		return nil, &errs.NoPageError{}
	}
	return nil, d.state.ctx.SetOffline(ctx, boolFlag(params, "offline", true))
}

func handleSetHeaders(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	if d.state.ctx == nil {
		return nil, &errs.NoPageError{}
	}
	return nil, d.state.ctx.SetExtraHeaders(ctx, stringMapFlag(params, "headers"))
}

func handleSetMedia(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := d.state.currentPage()
	if err != nil {
		return nil, err
	}
	return nil, page.EmulateMedia(ctx, stringFlag(params, "media"), stringFlag(params, "colorScheme"))
}

// handleSetCredentials recreates the context with HTTP basic-auth
// credentials applied, per spec's context-recreation discipline.
func handleSetCredentials(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	flags := d.state.launchFlags
	opts := contextOptionsFromFlags(flags)
	if err := d.state.recreateContext(ctx, opts, defaultTracePath(d.state.sessionName)); err != nil {
		return nil, err
	}
	if d.state.ctx != nil {
		if err := d.state.ctx.SetHTTPCredentials(ctx, stringFlag(params, "user"), stringFlag(params, "pass")); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func handleSetDefaultTimeout(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := d.state.currentPage()
	if err != nil {
		return nil, err
	}
	ms := intFlag(params, "timeout", 30000)
	page.SetDefaultTimeout(msToDuration(ms))
	return nil, nil
}
