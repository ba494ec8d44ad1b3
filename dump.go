package bembo

import (
	"fmt"
	"strings"
)

// Dump renders d's unresolved node tree as an indented textual
// description — node kind, nest depth, and the per-reference flattened
// bit — without resolving any Choice. It exists for debugging and for
// tests that want to assert on document shape independent of render-time
// layout decisions; it has no effect on Render or Pretty.
func (d Doc) Dump() string {
	var b strings.Builder
	dumpNode(&b, d, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, d Doc, depth int) {
	indent := strings.Repeat("  ", depth)
	if d.n == nil {
		fmt.Fprintf(b, "%sNil\n", indent)
		return
	}

	flat := ""
	if d.flattened {
		flat = " flattened"
	}

	switch d.n.kind {
	case kLine:
		fmt.Fprintf(b, "%sLine%s\n", indent, flat)
	case kText:
		fmt.Fprintf(b, "%sText(%q)%s\n", indent, d.n.text, flat)
	case kConcat:
		fmt.Fprintf(b, "%sConcat%s\n", indent, flat)
		for _, c := range d.n.children {
			dumpNode(b, c, depth+1)
		}
	case kChoice:
		fmt.Fprintf(b, "%sChoice%s\n", indent, flat)
		fmt.Fprintf(b, "%s  left:\n", indent)
		dumpNode(b, d.n.left, depth+2)
		fmt.Fprintf(b, "%s  right:\n", indent)
		dumpNode(b, d.n.right, depth+2)
	case kNest:
		fmt.Fprintf(b, "%sNest(%d)%s\n", indent, d.n.indent, flat)
		dumpNode(b, d.n.child, depth+1)
	}
}
