package daemon

import (
	"context"

	"github.com/spel/spel/internal/facade"
)

func init() {
	register("find", handleFind)
	register("find-all", handleFindAll)
}

func findOptionsFromParams(params map[string]interface{}) facade.FindOptions {
	return facade.FindOptions{
		Kind:        stringFlag(params, "kind"),
		Value:       stringFlag(params, "value"),
		Name:        stringFlag(params, "name"),
		Exact:       boolFlag(params, "exact", false),
		Nth:         intFlag(params, "nth", 0),
		WithinFrame: stringFlag(params, "frame"),
	}
}

// handleFind resolves a single locator by semantic criteria and, when
// find_action is present, immediately performs that action on it.
func handleFind(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	loc, err := page.Find(ctx, findOptionsFromParams(params))
	if err != nil {
		return nil, err
	}

	action := stringFlag(params, "find_action")
	if action == "" {
		count, err := loc.Count(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"count": count}, nil
	}
	return runLocatorAction(ctx, loc, action, params)
}

func handleFindAll(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	locs, err := page.FindAll(ctx, findOptionsFromParams(params))
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"count": len(locs)}, nil
}

// runLocatorAction dispatches the small verb set supported by find's
// find_action parameter, shared with handlers_interaction.go's own verbs.
func runLocatorAction(ctx context.Context, loc facade.Locator, action string, params map[string]interface{}) (interface{}, error) {
	switch action {
	case "click":
		return nil, loc.Click(ctx, clickOptionsFromParams(params))
	case "fill":
		return nil, loc.Fill(ctx, stringFlag(params, "value"))
	case "type":
		return nil, loc.Type(ctx, stringFlag(params, "text"), intFlag(params, "delay", 0))
	case "check":
		return nil, loc.Check(ctx)
	case "uncheck":
		return nil, loc.Uncheck(ctx)
	case "hover":
		return nil, loc.Hover(ctx)
	case "focus":
		return nil, loc.Focus(ctx)
	case "text":
		text, err := loc.Text(ctx)
		return map[string]interface{}{"text": text}, err
	case "count":
		count, err := loc.Count(ctx)
		return map[string]interface{}{"count": count}, err
	case "visible":
		visible, err := loc.IsVisible(ctx)
		return map[string]interface{}{"visible": visible}, err
	default:
		return nil, &paramError{"find_action:" + action}
	}
}
