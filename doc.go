// Package bembo implements a Wadler/Leijen-style pretty-printing algebra:
// an immutable document value that describes formatting intent, and a
// linear-time greedy renderer that lays it out within a target column
// width.
package bembo

import "fmt"

// kind discriminates the node variants of a Doc's underlying tree.
type kind uint8

const (
	kNil kind = iota
	kLine
	kText
	kConcat
	kChoice
	kNest
)

// node is the shared, immutable payload a Doc points to. Nodes are never
// mutated after construction; sharing a node across multiple Doc values is
// the whole point of the algebra (notably inside Group, which keeps two
// references to the same sub-document).
type node struct {
	kind kind

	text string // kText

	children []Doc // kConcat, in order

	left, right Doc // kChoice: left is the flatter alternative

	child  Doc // kNest
	indent int // kNest
}

// Doc is an immutable, shareable document value. The zero Doc is Nil().
//
// A Doc is a thin handle: a pointer to a shared node plus a per-reference
// "flattened" bit (see Flatten). Copying a Doc by value is always safe and
// cheap; Go's garbage collector, not manual reference counting, is what
// keeps a shared node alive for as long as any Doc points to it.
type Doc struct {
	n         *node
	flattened bool
}

var lineNode = &node{kind: kLine}

// Nil returns the empty document: the identity element of concatenation.
func Nil() Doc {
	return Doc{}
}

// Line returns a mandatory line break. Inside a flattened context it
// behaves as a single space instead.
func Line() Doc {
	return Doc{n: lineNode}
}

// Text returns a literal text fragment. An empty string collapses to Nil.
// s must not contain '\n' — embedding a raw newline in Text would desync
// the renderer's column accounting from the writer's actual output, so
// Text rejects it at construction rather than producing silently wrong
// layouts. Column width is counted in bytes (len(s)), not runes or display
// cells; a fragment containing multi-byte UTF-8 text will be measured
// wider than it displays.
func Text(s string) Doc {
	if s == "" {
		return Nil()
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			panic("bembo: Text must not contain a newline; use Line() or VCat to introduce breaks")
		}
	}
	return Doc{n: &node{kind: kText, text: s}}
}

// Char returns a single-character text fragment.
func Char(c rune) Doc {
	return Text(string(c))
}

// Textf formats according to a format specifier and returns the result as
// Text. It must not produce a string containing '\n'.
func Textf(format string, args ...any) Doc {
	return Text(fmt.Sprintf(format, args...))
}

// Concat concatenates the given documents in order. Nil arguments are
// elided; if fewer than two non-nil documents remain, the remaining one
// (or Nil) is returned directly rather than wrapping it in a singleton
// Concat node.
func Concat(docs ...Doc) Doc {
	return concatSlice(docs)
}

// VCat concatenates the given documents separated by mandatory line
// breaks: VCat(a, b, c) is Concat(a, Line(), b, Line(), c).
func VCat(docs ...Doc) Doc {
	if len(docs) == 0 {
		return Nil()
	}
	out := make([]Doc, 0, 2*len(docs)-1)
	for i, d := range docs {
		if i > 0 {
			out = append(out, Line())
		}
		out = append(out, d)
	}
	return concatSlice(out)
}

// concatSlice builds a Concat node from docs, filtering Nil children and
// collapsing to zero/one remaining children per the constructor contract
// in spec.md §4.1.
func concatSlice(docs []Doc) Doc {
	filtered := make([]Doc, 0, len(docs))
	for _, d := range docs {
		if d.IsNil() {
			continue
		}
		filtered = append(filtered, d)
	}
	switch len(filtered) {
	case 0:
		return Nil()
	case 1:
		return filtered[0]
	default:
		return Doc{n: &node{kind: kConcat, children: filtered}}
	}
}

// Nest increases the indentation applied to line breaks introduced inside
// d by k columns. k may be negative; the effective indentation at any
// point is the arithmetic sum of enclosing nests, floored at 0 when a line
// is actually emitted.
func Nest(k int, d Doc) Doc {
	if d.IsNil() {
		return Nil()
	}
	return Doc{n: &node{kind: kNest, child: d, indent: k}}
}

// choice builds a Choice node: prefer left if it fits, otherwise right.
// left must be the flatter alternative; Group, SoftLine and SoftBreak are
// the only exported producers of choices and each guarantees this.
func choice(left, right Doc) Doc {
	return Doc{n: &node{kind: kChoice, left: left, right: right}}
}

// Group introduces a flat/break alternative: the flattened form of d is
// tried first, falling back to d itself (with its own breaks) if the flat
// form doesn't fit on the current line.
func Group(d Doc) Doc {
	return choice(Flatten(d), d)
}

// Flatten returns a reference to d with the flattened bit set. It does
// not mutate d or the node d points to — flattening is a property of the
// reference, not the node, so the same shared node can be traversed both
// flattened and unflattened through different Doc values (exactly what
// Group relies on).
func Flatten(d Doc) Doc {
	d.flattened = true
	return d
}

// IsNil reports whether d is the empty document.
func (d Doc) IsNil() bool {
	return d.n == nil
}

// Append concatenates d with other: d.Append(other) is Concat(d, other).
func (d Doc) Append(other Doc) Doc {
	return concatSlice([]Doc{d, other})
}

// AppendSpace concatenates d with other, separated by a single space:
// a.AppendSpace(b) is Concat(a, Text(" "), b).
func (d Doc) AppendSpace(other Doc) Doc {
	return concatSlice([]Doc{d, Char(' '), other})
}

// AppendLine concatenates d with other, separated by a mandatory line
// break: a.AppendLine(b) is Concat(a, Line(), b).
func (d Doc) AppendLine(other Doc) Doc {
	return concatSlice([]Doc{d, Line(), other})
}
