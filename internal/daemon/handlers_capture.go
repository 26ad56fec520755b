package daemon

import (
	"context"
	"encoding/base64"
	"os"

	"github.com/spel/spel/internal/facade"
)

func init() {
	register("screenshot", handleScreenshot)
	register("pdf", handlePDF)
}

func handleScreenshot(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}

	if sel := stringFlag(params, "selector"); sel != "" {
		loc, err := resolveSelector(ctx, d, page, sel)
		if err != nil {
			return nil, err
		}
		data, err := loc.Screenshot(ctx)
		if err != nil {
			return nil, err
		}
		return encodeCapture(params, data)
	}

	fullPage := boolFlag(params, "fullPage", false)
	var clip *facade.Box
	if _, ok := params["clipX"]; ok {
		clip = &facade.Box{
			X:      intFlag(params, "clipX", 0),
			Y:      intFlag(params, "clipY", 0),
			Width:  intFlag(params, "clipWidth", 0),
			Height: intFlag(params, "clipHeight", 0),
		}
	}
	data, err := page.Screenshot(ctx, fullPage, clip)
	if err != nil {
		return nil, err
	}
	return encodeCapture(params, data)
}

func handlePDF(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	data, err := page.PDF(ctx)
	if err != nil {
		return nil, err
	}
	return encodeCapture(params, data)
}

// encodeCapture writes the capture to the requested path (if "path" is
// given) or returns it inline as base64, matching the client's "optional
// path" note for screenshot/pdf.
func encodeCapture(params map[string]interface{}, data []byte) (interface{}, error) {
	if path := stringFlag(params, "path"); path != "" {
		if err := writeCaptureFile(path, data); err != nil {
			return nil, err
		}
		return map[string]interface{}{"path": path, "bytes": len(data)}, nil
	}
	return map[string]interface{}{"base64": base64.StdEncoding.EncodeToString(data), "bytes": len(data)}, nil
}

func writeCaptureFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
