package mdw

// quoteTracker counts nested pre-formatted (inline code) spans so that any
// depth of nesting opens and closes exactly one outer backtick pair.
type quoteTracker struct {
	depth  int
	pushes int
	pops   int
	w      *writer
}

// push enters a pre-formatted span. The opening backtick is emitted only on
// the 0→1 transition.
func (q *quoteTracker) push() {
	if q.depth == 0 {
		q.w.add("`")
	}
	q.depth++
	q.pushes++
}

// pop leaves a pre-formatted span. The closing backtick is emitted only on
// the 1→0 transition. Callers own push/pop pairing per enter/exit pair.
func (q *quoteTracker) pop() {
	q.depth--
	q.pops++
	if q.depth == 0 {
		q.w.add("`")
	}
}

// escape appends text to the output. Inside a pre-formatted span the text is
// wrapped in its own backtick pair so formatting runes (underscores in type
// annotations) survive as an atomic code span; outside it is added verbatim.
func (q *quoteTracker) escape(text string) {
	if q.depth > 0 {
		q.w.add("`" + text + "`")
	} else {
		q.w.add(text)
	}
}

// balanced reports whether every push was matched by a pop.
func (q *quoteTracker) balanced() bool {
	return q.depth == 0 && q.pushes == q.pops
}
