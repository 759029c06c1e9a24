package mdw

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalancedQuotes reports a render pass that ended with the
	// pre-formatted span counter out of balance. The output would contain
	// stray backticks, so it is withheld.
	ErrUnbalancedQuotes = errors.New("unbalanced pre-formatted span nesting")
	// ErrUnbalancedLevels reports a render pass that ended with open
	// indentation levels.
	ErrUnbalancedLevels = errors.New("unbalanced indentation levels")
)

// RenderRequest configures Render.
type RenderRequest struct {
	// Doc is the finalized document tree.
	Doc *Node
	// DocName is the current document's identifier/path; image and
	// cross-document reference targets resolve against its folder.
	DocName string
	// TargetURI maps a document name to its output-relative URI. When nil,
	// the document name itself is used.
	TargetURI func(docname string) string
	Options   []RenderOption
}

// Render walks one document tree and returns its Markdown text. All tracking
// state lives in a translator created here, so concurrent calls are
// independent by construction.
func Render(req RenderRequest) (string, error) {
	if req.Doc == nil {
		return "", fmt.Errorf("render: doc is nil")
	}
	cfg := renderConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	req.Doc.wire()
	t := newTranslator(req.DocName, req.TargetURI, cfg)
	Walk(req.Doc, t)
	if !t.quotes.balanced() {
		return "", fmt.Errorf("render %q: %w (depth %d)", req.DocName, ErrUnbalancedQuotes, t.quotes.depth)
	}
	if !t.w.balanced() {
		return "", fmt.Errorf("render %q: %w (%d opened, %d closed)", req.DocName, ErrUnbalancedLevels, t.w.opened, t.w.closed)
	}
	return t.w.String(), nil
}
