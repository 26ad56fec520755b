package snapshot

import (
	"strings"
	"testing"
)

func sampleTree() *Node {
	return &Node{
		Role: "WebArea",
		Name: "Example Domain",
		Children: []*Node{
			{Role: "heading", Name: "Example Domain", Ref: "e1", Interactive: false, Tag: "h1"},
			{Role: "generic", Ref: "", Children: nil},
			{
				Role: "link", Name: "More information...", Ref: "e2", Interactive: true, Tag: "a",
			},
			{
				Role: "button", Name: "Submit", Ref: "e3", Interactive: true, Focused: true, Tag: "button",
			},
		},
	}
}

func TestRenderUnfilteredContainsAllRefs(t *testing.T) {
	out := Render(sampleTree(), Filters{})
	for _, ref := range []string{"e1", "e2", "e3"} {
		if !strings.Contains(out, "[@"+ref+"]") {
			t.Errorf("expected unfiltered render to contain ref %s, got:\n%s", ref, out)
		}
	}
}

func TestInteractiveFilterIsLineSubset(t *testing.T) {
	tree := sampleTree()
	full := Render(tree, Filters{})
	filtered := Render(tree, Filters{Interactive: true})

	fullLines := strings.Split(full, "\n")
	fullSet := make(map[string]bool, len(fullLines))
	for _, l := range fullLines {
		fullSet[l] = true
	}
	for _, l := range strings.Split(filtered, "\n") {
		if l == "" {
			continue
		}
		if !fullSet[l] {
			t.Errorf("filtered line %q not present verbatim in unfiltered render", l)
		}
		if !strings.Contains(l, "[@") {
			t.Errorf("interactive-only line missing ref marker: %q", l)
		}
	}
}

func TestCursorRefinesInteractive(t *testing.T) {
	tree := sampleTree()
	interactiveOnly := Render(tree, Filters{Interactive: true})
	cursorAndInteractive := Render(tree, Filters{Interactive: true, Cursor: true})

	interactiveLines := make(map[string]bool)
	for _, l := range strings.Split(interactiveOnly, "\n") {
		interactiveLines[l] = true
	}
	for _, l := range strings.Split(cursorAndInteractive, "\n") {
		if l == "" {
			continue
		}
		if !interactiveLines[l] {
			t.Errorf("cursor+interactive produced a line outside the interactive-only set: %q", l)
		}
	}
	if !strings.Contains(cursorAndInteractive, "Submit") {
		t.Errorf("expected the focused Submit button to survive cursor refinement")
	}
	if strings.Contains(cursorAndInteractive, "More information") {
		t.Errorf("unfocused link should not survive cursor refinement")
	}
}

func TestMaxDepthDropsDeepLines(t *testing.T) {
	root := &Node{Role: "WebArea", Children: []*Node{
		{Role: "generic", Ref: "e1", Interactive: true, Children: []*Node{
			{Role: "button", Ref: "e2", Interactive: true, Name: "Deep"},
		}},
	}}
	out := Render(root, Filters{MaxDepth: 1})
	if strings.Contains(out, "Deep") {
		t.Errorf("expected depth-2 node to be dropped by MaxDepth=1, got:\n%s", out)
	}
}

func TestRefTablePopulateAndGetUnknownRef(t *testing.T) {
	table := NewRefTable()
	table.Populate(sampleTree())
	if table.Len() != 3 {
		t.Fatalf("expected 3 refs, got %d", table.Len())
	}
	if _, ok := table.Get("e1"); !ok {
		t.Errorf("expected e1 in table")
	}
	if _, ok := table.Get("e99"); ok {
		t.Errorf("did not expect e99 in table")
	}
}

func TestRefTableResetClearsEntries(t *testing.T) {
	table := NewRefTable()
	table.Populate(sampleTree())
	table.Reset()
	if table.Len() != 0 {
		t.Errorf("expected empty table after reset, got %d entries", table.Len())
	}
}
