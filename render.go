package bembo

// renderState implements stepState by driving an actual Writer. It has no
// extra pending work of its own beyond the current document, so next
// always reports nothing left.
type renderState struct {
	w      Writer
	cols   int
	column int
}

func (s *renderState) width() int { return s.cols }
func (s *renderState) col() int   { return s.column }

func (s *renderState) visitText(text string) bool {
	s.w.Write(text)
	s.column += len(text)
	return true
}

func (s *renderState) visitLine(indent int) bool {
	s.w.Line(indent)
	if indent < 0 {
		indent = 0
	}
	s.column = indent
	return true
}

func (s *renderState) next() (frame, bool) {
	return frame{}, false
}

// Render drives d's layout against w, attempting to keep every line
// within cols columns. Rendering runs synchronously to completion on the
// calling goroutine; there is no cancellation, matching spec.md §5 — a
// document that needs bounded work must itself be bounded.
func (d Doc) Render(w Writer, cols int) {
	s := &renderState{w: w, cols: cols}
	v := &docVisitor[*renderState]{state: s}
	v.visit(d, false)
}

// Pretty renders d into a fresh string at the given column width.
func (d Doc) Pretty(cols int) string {
	w := &StringWriter{}
	d.Render(w, cols)
	return w.String()
}
