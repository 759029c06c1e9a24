package mdw

import "strings"

// writer accumulates output fragments and applies the currently open level
// prefixes (block quotes, definition bodies) at the start of every line.
type writer struct {
	b           strings.Builder
	levels      []string
	prefix      string
	atLineStart bool

	opened int
	closed int
}

func newWriter() *writer {
	return &writer{atLineStart: true}
}

// add appends text to the output, inserting the level prefix after every
// newline while levels are open.
func (w *writer) add(text string) {
	if text == "" {
		return
	}
	for {
		if w.atLineStart && w.prefix != "" {
			w.b.WriteString(w.prefix)
		}
		w.atLineStart = false
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			w.b.WriteString(text)
			return
		}
		w.b.WriteString(text[:i+1])
		w.atLineStart = true
		text = text[i+1:]
		if text == "" {
			return
		}
	}
}

// startLevel opens a line-prefix level. Every subsequent line starts with
// the concatenation of all open prefixes until finishLevel is called.
func (w *writer) startLevel(prefix string) {
	w.levels = append(w.levels, prefix)
	w.prefix += prefix
	w.opened++
}

// finishLevel closes the innermost level.
func (w *writer) finishLevel() {
	w.closed++
	if len(w.levels) == 0 {
		return
	}
	last := w.levels[len(w.levels)-1]
	w.levels = w.levels[:len(w.levels)-1]
	w.prefix = w.prefix[:len(w.prefix)-len(last)]
}

// balanced reports whether every opened level was closed.
func (w *writer) balanced() bool {
	return w.opened == w.closed && len(w.levels) == 0
}

func (w *writer) String() string {
	return w.b.String()
}
