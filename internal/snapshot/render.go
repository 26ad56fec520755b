package snapshot

import (
	"fmt"
	"strings"
)

// Filters configures which lines survive rendering, applied in the fixed
// order maxDepth -> compact -> interactive -> cursor (cursor is a strict
// refinement of interactive, applied last).
type Filters struct {
	Interactive bool
	Cursor      bool
	Compact     bool
	MaxDepth    int // 0 means unlimited
}

type line struct {
	depth int
	node  *Node
	text  string
}

// Render turns a captured tree into the indented text form the CLI prints,
// applying Filters. Every filtered variant is a line-subset of the
// unfiltered render: filters only drop lines, they never rewrite one.
func Render(root *Node, f Filters) string {
	if root == nil {
		return ""
	}
	lines := flatten(root, 0)

	if f.MaxDepth > 0 {
		lines = filterLines(lines, func(l line) bool { return l.depth <= f.MaxDepth })
	}
	if f.Compact {
		lines = filterLines(lines, func(l line) bool { return !isCompactDrop(l.node) })
	}
	if f.Interactive || f.Cursor {
		lines = filterLines(lines, func(l line) bool { return l.node.Interactive })
	}
	if f.Cursor {
		lines = filterLines(lines, func(l line) bool { return l.node.Focused })
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return strings.Join(out, "\n")
}

func filterLines(lines []line, keep func(line) bool) []line {
	out := lines[:0:0]
	for _, l := range lines {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

// isCompactDrop reports whether a line is a bare single-word generic
// container worth collapsing out of the tree (spec §4.3 "compact" filter).
func isCompactDrop(n *Node) bool {
	return n.Role == "generic" && n.Name == "" && n.Ref == "" && len(n.Children) == 0
}

func flatten(n *Node, depth int) []line {
	lines := []line{{depth: depth, node: n, text: renderLine(n, depth)}}
	for _, c := range n.Children {
		lines = append(lines, flatten(c, depth+1)...)
	}
	return lines
}

func renderLine(n *Node, depth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("- ")
	b.WriteString(n.Role)
	if n.Name != "" {
		fmt.Fprintf(&b, " %q", n.Name)
	}
	if n.Ref != "" {
		fmt.Fprintf(&b, " [@%s]", n.Ref)
	}
	var states []string
	if n.Disabled {
		states = append(states, "disabled")
	}
	if n.Expanded != nil {
		states = append(states, fmt.Sprintf("expanded=%v", *n.Expanded))
	}
	if n.Focused {
		states = append(states, "focused")
	}
	if n.Checked != nil {
		states = append(states, fmt.Sprintf("checked=%v", n.Checked))
	}
	if n.Pressed != nil {
		states = append(states, fmt.Sprintf("pressed=%v", n.Pressed))
	}
	if n.Selected {
		states = append(states, "selected")
	}
	if n.Required {
		states = append(states, "required")
	}
	if n.Readonly {
		states = append(states, "readonly")
	}
	if n.Level != nil {
		states = append(states, fmt.Sprintf("level=%d", *n.Level))
	}
	if n.Mixed {
		states = append(states, "mixed")
	}
	if len(states) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(states, ", "))
		b.WriteString(")")
	}
	return b.String()
}
