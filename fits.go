package bembo

// fitsState implements stepState to answer: does candidate, followed by
// whatever the renderer still has pending, fit within width columns
// starting at column col? It never writes anything — it only accounts
// for column cost and stops at the first real line break.
//
// pending is a read-only view of the renderer's in-progress work stack,
// consumed top-first (pending[idx] downward) so the lookahead sees the
// same order the renderer would process it in. fits never mutates
// pending; it only reads via a private index, so the renderer's own walk
// continues unaffected once the choice is resolved.
type fitsState struct {
	w, c    int
	pending []frame
	idx     int
	result  bool
}

func (s *fitsState) width() int { return s.w }
func (s *fitsState) col() int   { return s.c }

func (s *fitsState) visitText(text string) bool {
	s.c += len(text)
	if s.c > s.w {
		s.result = false
		return false
	}
	return true
}

func (s *fitsState) visitLine(int) bool {
	// A real line break means the rest of the window is irrelevant: the
	// candidate fits regardless of what comes after it on the next line.
	s.result = true
	return false
}

func (s *fitsState) next() (frame, bool) {
	if s.idx < 0 {
		return frame{}, false
	}
	f := s.pending[s.idx]
	s.idx--
	return f, true
}

// fits reports whether candidate, laid out flat and followed by pending
// (the renderer's remaining work, most-recent-first), stays within width
// columns starting at column col.
func fits(width, col int, pending []frame, candidate Doc) bool {
	s := &fitsState{w: width, c: col, pending: pending, idx: len(pending) - 1, result: true}
	v := &docVisitor[*fitsState]{state: s}
	v.visit(candidate, false)
	return s.result
}
