package mdw

import (
	"strings"
	"testing"
)

func TestQuoteNestingEmitsOneOuterPair(t *testing.T) {
	w := newWriter()
	q := &quoteTracker{w: w}
	q.push()
	q.push()
	q.push()
	w.add("inner")
	q.pop()
	q.pop()
	q.pop()
	if got := w.String(); got != "`inner`" {
		t.Fatalf("nested pushes should emit one backtick pair, got %q", got)
	}
	if !q.balanced() {
		t.Fatalf("expected balanced tracker, depth %d", q.depth)
	}
}

func TestQuoteBalanceCountsBackticks(t *testing.T) {
	w := newWriter()
	q := &quoteTracker{w: w}
	for i := 0; i < 4; i++ {
		q.push()
		w.add("x")
		q.pop()
	}
	out := w.String()
	if opens := strings.Count(out, "`"); opens != 8 {
		t.Fatalf("expected 8 backticks for 4 balanced pairs, got %d in %q", opens, out)
	}
}

func TestEscapeWrapsOnlyInsideQuotedSpan(t *testing.T) {
	w := newWriter()
	q := &quoteTracker{w: w}
	q.escape("_plain_")
	q.push()
	q.escape("_")
	q.pop()
	if got := w.String(); got != "_plain_`"+"`_`"+"`" {
		t.Fatalf("unexpected escape output: %q", got)
	}
}

func TestQuoteTrackerReportsImbalance(t *testing.T) {
	w := newWriter()
	q := &quoteTracker{w: w}
	q.push()
	if q.balanced() {
		t.Fatalf("expected imbalance after lone push")
	}
}
