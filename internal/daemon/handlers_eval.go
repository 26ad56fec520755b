package daemon

import (
	"context"
	"encoding/base64"
	"encoding/json"
)

func init() {
	register("evaluate", handleEvaluate)
}

func handleEvaluate(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	script := stringFlag(params, "script")
	if script == "" {
		return nil, &paramError{"script"}
	}

	var result interface{}
	if sel := stringFlag(params, "selector"); sel != "" {
		loc, err := resolveSelector(ctx, d, page, sel)
		if err != nil {
			return nil, err
		}
		result, err = loc.Evaluate(ctx, script)
		if err != nil {
			return nil, err
		}
	} else {
		result, err = page.EvaluateJS(ctx, script)
		if err != nil {
			return nil, err
		}
	}

	if boolFlag(params, "base64", false) {
		raw, err := json.Marshal(result)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"result": base64.StdEncoding.EncodeToString(raw)}, nil
	}
	return map[string]interface{}{"result": result}, nil
}
