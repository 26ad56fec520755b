package snapshot

import (
	"context"
	"fmt"

	"github.com/spel/spel/internal/facade"
)

// CaptureAll snapshots the main frame and every child frame, merging child
// frame subtrees under the main tree's root with ids prefixed "f<k>_"
// where k is the frame's 1-based position in Page.Frames (spec §4.3 rule 6).
func CaptureAll(ctx context.Context, p facade.Page, scopeSelector string) (*Tree, error) {
	main, err := Capture(ctx, p, scopeSelector, "")
	if err != nil {
		return nil, err
	}
	if main.Root == nil {
		return main, nil
	}

	frames, err := p.Frames(ctx)
	if err != nil {
		return main, nil // best-effort: a page with no accessible child frames still snapshots fine
	}
	for k, fi := range frames {
		framePage, err := p.Frame(ctx, fi.URL)
		if err != nil {
			continue
		}
		ft, err := Capture(ctx, framePage, "", fmt.Sprintf("f%d_", k+1))
		if err != nil || ft.Root == nil {
			continue
		}
		main.Root.Children = append(main.Root.Children, ft.Root)
		main.Counter += ft.Counter
	}
	return main, nil
}
