package daemon

import (
	"context"

	"github.com/spel/spel/internal/snapshot"
)

func init() {
	register("snapshot", handleSnapshot)
	register("annotate", handleAnnotate)
	register("unannotate", handleUnannotate)
	register("clear-refs", handleClearRefs)
}

func handleSnapshot(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}

	scope := stringFlag(params, "selector")
	tree, err := snapshot.CaptureAll(ctx, page, scope)
	if err != nil {
		return nil, err
	}
	d.state.refs.Populate(tree.Root)

	filters := snapshot.Filters{
		Interactive: boolFlag(params, "interactive", false),
		Cursor:      boolFlag(params, "cursor", false),
		Compact:     boolFlag(params, "compact", false),
		MaxDepth:    intFlag(params, "depth", 0),
	}
	text := snapshot.Render(tree.Root, filters)
	return map[string]interface{}{"tree": text, "refCount": d.state.refs.Len()}, nil
}

// annotateScript draws a badge, bounding box outline and dimensions label
// over every element the ref table currently knows about.
const annotateScript = `(function() {
  document.querySelectorAll('[data-spel-annotation]').forEach(function(n) { n.remove(); });
  document.querySelectorAll('[data-spel-ref]').forEach(function(el) {
    var ref = el.getAttribute('data-spel-ref');
    var box = el.getBoundingClientRect();
    var badge = document.createElement('div');
    badge.setAttribute('data-spel-annotation', '1');
    badge.textContent = ref + ' ' + Math.round(box.width) + 'x' + Math.round(box.height);
    badge.style.cssText = 'position:fixed;z-index:2147483647;background:#ff5722;color:#fff;' +
      'font:10px monospace;padding:1px 3px;pointer-events:none;left:' + box.left + 'px;top:' +
      Math.max(0, box.top - 14) + 'px;';
    document.body.appendChild(badge);
    var outline = document.createElement('div');
    outline.setAttribute('data-spel-annotation', '1');
    outline.style.cssText = 'position:fixed;z-index:2147483646;border:1px solid #ff5722;' +
      'pointer-events:none;left:' + box.left + 'px;top:' + box.top + 'px;width:' + box.width +
      'px;height:' + box.height + 'px;';
    document.body.appendChild(outline);
  });
  return true;
})()`

const unannotateScript = `(function() {
  document.querySelectorAll('[data-spel-annotation]').forEach(function(n) { n.remove(); });
  return true;
})()`

func handleAnnotate(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	if _, err := page.EvaluateJS(ctx, annotateScript); err != nil {
		return nil, err
	}
	return nil, nil
}

func handleUnannotate(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	page, err := requireNavigatedPage(ctx, d)
	if err != nil {
		return nil, err
	}
	if _, err := page.EvaluateJS(ctx, unannotateScript); err != nil {
		return nil, err
	}
	return nil, nil
}

func handleClearRefs(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	d.state.refs.Reset()
	return nil, nil
}
