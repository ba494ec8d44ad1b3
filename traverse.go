package bembo

// frame is one unit of pending work: a document reference together with
// the indentation and flattened context it's being traversed under. This
// is the Go shape of the original C++ Node struct (doc.cc's
// anonymous-namespace Node) — a (doc, indent, flattening) triple.
type frame struct {
	d         Doc
	indent    int
	flattened bool
}

// stepState is the behavior a traversal needs from whoever is consuming
// Text/Line events: the renderer writes them out, the fit predicate just
// accounts for their width. This mirrors the original's templated
// DocVisitor<T>, where T is either DocRenderer or Fits — Go generics let
// the same walk (the original doc.cc's biggest shared piece of logic) serve both
// without duplicating the Concat/Choice/Nest dispatch.
type stepState interface {
	width() int
	col() int

	// visitText is called with a text fragment (including the single
	// space a flattened Line becomes). It returns whether the walk
	// should keep going.
	visitText(s string) bool

	// visitLine is called for a real (non-flattened) line break. It
	// returns whether the walk should keep going.
	visitLine(indent int) bool

	// next supplies additional pending work once the current document
	// is exhausted. The fit predicate uses this to continue into the
	// renderer's work stack; the renderer itself has nothing more to
	// offer and returns ok=false.
	next() (frame, bool)
}

// docVisitor drives the shared depth-first walk over a Doc's tree,
// delegating Text/Line events to a stepState and stopping as soon as the
// stepState asks it to.
type docVisitor[T stepState] struct {
	work  []frame
	state T
}

func (v *docVisitor[T]) done() bool {
	if len(v.work) > 0 {
		return false
	}
	if f, ok := v.state.next(); ok {
		v.work = append(v.work, f)
		return false
	}
	return true
}

func (v *docVisitor[T]) push(f frame) {
	v.work = append(v.work, f)
}

func (v *docVisitor[T]) pop() frame {
	last := len(v.work) - 1
	f := v.work[last]
	v.work = v.work[:last]
	return f
}

// child builds the frame for descending into d from parent, applying the
// indentation delta and the flattened-propagation rule from spec.md §4.6:
// a child's effective flattened flag is the parent's flag OR'd with the
// child reference's own flattened bit.
func child(parent frame, d Doc, indentDelta int) frame {
	return frame{
		d:         d,
		indent:    parent.indent + indentDelta,
		flattened: parent.flattened || d.flattened,
	}
}

// visit runs the walk over root, entered with the given outer flattened
// context (false for a fresh Render/fit-check at the true root; fits()
// passes false too, since the candidate's own flattened bit — set by
// Group — already does the work).
func (v *docVisitor[T]) visit(root Doc, outerFlattened bool) {
	v.work = v.work[:0]
	v.push(frame{d: root, indent: 0, flattened: outerFlattened || root.flattened})

	running := true
	for running && !v.done() {
		f := v.pop()
		if f.d.n == nil {
			continue // Nil: nothing to do
		}

		switch f.d.n.kind {
		case kLine:
			if f.flattened {
				running = v.state.visitText(" ")
			} else {
				running = v.state.visitLine(f.indent)
			}

		case kText:
			running = v.state.visitText(f.d.n.text)

		case kConcat:
			children := f.d.n.children
			for i := len(children) - 1; i >= 0; i-- {
				v.push(child(f, children[i], 0))
			}

		case kNest:
			v.push(child(f, f.d.n.child, f.d.n.indent))

		case kChoice:
			if f.flattened {
				v.push(child(f, f.d.n.left, 0))
			} else if fits(v.state.width(), v.state.col(), v.work, f.d.n.left) {
				v.push(child(f, f.d.n.left, 0))
			} else {
				v.push(child(f, f.d.n.right, 0))
			}
		}
	}
}
