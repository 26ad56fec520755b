package snapshot

import (
	"context"
	"fmt"

	"github.com/spel/spel/internal/errs"
	"github.com/spel/spel/internal/facade"
)

// Entry is one ref table row (spec §3 Ref Entry).
type Entry struct {
	Role   string
	Name   string
	Tag    string
	Box    Box
	Mixed  bool
}

// RefTable maps ref ids to entries. The whole table is replaced atomically
// at the end of every capture; nothing partially updates it.
type RefTable struct {
	entries map[string]Entry
	order   []string
}

func NewRefTable() *RefTable {
	return &RefTable{entries: make(map[string]Entry)}
}

// Reset clears the table. Populate calls it before every rebuild; the
// daemon also calls it directly on tab switch, frame switch, clear-refs,
// connect and context recreation.
func (t *RefTable) Reset() {
	t.entries = make(map[string]Entry)
	t.order = nil
}

// Populate rebuilds the table from a freshly captured tree, walking it
// depth-first so ref ids stay in assignment order.
func (t *RefTable) Populate(tree *Node) {
	t.Reset()
	if tree == nil {
		return
	}
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Ref != "" {
			box := Box{}
			if n.Box != nil {
				box = *n.Box
			}
			t.entries[n.Ref] = Entry{Role: n.Role, Name: n.Name, Tag: n.Tag, Box: box, Mixed: n.Mixed}
			t.order = append(t.order, n.Ref)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree)
}

func (t *RefTable) Get(ref string) (Entry, bool) {
	e, ok := t.entries[ref]
	return e, ok
}

func (t *RefTable) Len() int { return len(t.order) }

// Range describes the extant ref ids for UnknownRefError's helpful message.
func (t *RefTable) Range() (low, high string, n int) {
	if len(t.order) == 0 {
		return "", "", 0
	}
	return t.order[0], t.order[len(t.order)-1], len(t.order)
}

// Resolve turns a ref id ("e5" or "@e5") into a Locator by looking up its
// DOM attribute. Unknown refs raise errs.UnknownRefError listing the
// extant range, per spec §7.
func (t *RefTable) Resolve(ctx context.Context, p facade.Page, ref string) (facade.Locator, error) {
	ref = normalizeRef(ref)
	if _, ok := t.entries[ref]; !ok {
		low, high, n := t.Range()
		return nil, &errs.UnknownRefError{Ref: ref, LowRef: low, HighRef: high, RangeLen: n}
	}
	return p.Resolve(ctx, fmt.Sprintf(`[data-spel-ref="%s"]`, ref))
}

func normalizeRef(ref string) string {
	if len(ref) > 0 && ref[0] == '@' {
		return ref[1:]
	}
	return ref
}
