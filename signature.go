package mdw

import "strings"

// Object description regions (class/function/attribute signatures and their
// bodies) render as HTML description lists with the signature itself
// bracketed in an inline code span via the quote tracker.

func enterDesc(t *translator, n *Node) WalkStatus {
	t.w.add("<dl>")
	return WalkContinue
}

func exitDesc(t *translator, n *Node) {
	t.w.add("</dl>\n\n")
}

func enterDescSignature(t *translator, n *Node) WalkStatus {
	t.w.add("<dt>\n\n")
	parentObjType := ""
	if n.Parent() != nil {
		parentObjType = n.Parent().Attr("objtype")
	}
	if ids := n.IDs(); parentObjType != "describe" && len(ids) > 0 && n.BoolAttr("first") {
		t.w.add("<!--[" + ids[0] + "]-->")
	}
	return WalkContinue
}

func exitDescSignature(t *translator, n *Node) {
	if !n.BoolAttr("is_multiline") {
		t.w.add("\n</dt>\n")
	}
}

// Annotation, e.g. "class", "static", "= None".
func enterDescAnnotation(t *translator, n *Node) WalkStatus {
	t.quotes.escape(" _")
	t.w.add(strings.TrimSpace(n.AsText()))
	return WalkSkipChildren
}

func exitDescAnnotation(t *translator, n *Node) {
	t.quotes.escape("_ ")
}

// Module preroll for a class/method name.
func enterDescAddname(t *translator, n *Node) WalkStatus {
	t.quotes.push()
	return WalkContinue
}

func exitDescAddname(t *translator, n *Node) {
	t.quotes.pop()
}

func enterDescName(t *translator, n *Node) WalkStatus {
	t.quotes.escape("**")
	t.quotes.push()
	return WalkContinue
}

func exitDescName(t *translator, n *Node) {
	t.quotes.pop()
	t.quotes.escape("**")
}

func enterDescContent(t *translator, n *Node) WalkStatus {
	t.w.add("<dd>\n\n")
	return WalkContinue
}

func exitDescContent(t *translator, n *Node) {
	t.w.add("</dd>")
	t.w.add("\n\n\n")
}

func enterDescParameterList(t *translator, n *Node) WalkStatus {
	t.quotes.push()
	t.w.add("(")
	return WalkContinue
}

func exitDescParameterList(t *translator, n *Node) {
	t.w.add(")")
	t.quotes.pop()
}

// A single parameter. An annotated parameter ("name: type") is split and
// re-emitted directly, with the type in a stronger emphasis code span; the
// split text fully replaces the normal content path, so the subtree is
// skipped. A trailing comma is emitted while a following sibling exists.
func enterDescParameter(t *translator, n *Node) WalkStatus {
	text := n.AsText()
	t.quotes.escape("_")
	if i := strings.Index(text, ":"); i >= 0 {
		name, typ := text[:i], text[i+1:]
		t.w.add(strings.TrimSpace(name))
		t.quotes.escape("_")
		t.w.add(": ")
		t.quotes.escape("__")
		t.w.add(strings.TrimSpace(typ))
		t.quotes.escape("__")
		if n.NextSibling() != nil {
			t.w.add(", ")
		}
		return WalkSkipNode
	}
	return WalkContinue
}

func exitDescParameter(t *translator, n *Node) {
	t.quotes.escape("_")
	if n.NextSibling() != nil {
		t.w.add(", ")
	}
}

func enterDescReturns(t *translator, n *Node) WalkStatus {
	t.w.add(" → ")
	t.quotes.escape("**")
	t.quotes.push()
	return WalkContinue
}

func exitDescReturns(t *translator, n *Node) {
	t.quotes.pop()
	t.quotes.escape("**")
}
