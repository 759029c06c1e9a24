package mdw

import "strings"

// Admonitions render as a block-quoted region with a heading taken from the
// admonition's first child. Markdown has no native admonition syntax, so a
// quoted block is the most portable rendition.
func enterAdmonition(t *translator, n *Node) WalkStatus {
	if len(n.Children) == 0 {
		return WalkContinue
	}
	title := n.Children[0]
	n.Children = n.Children[1:]
	n.wire()
	t.w.startLevel("> ")
	t.w.add("## " + title.AsText() + "  \n")
	t.admonitionOpen[n] = struct{}{}
	return WalkContinue
}

// exitAdmonition closes the quoted level only if enter opened one, keeping
// level open/close counts equal across the pass.
func exitAdmonition(t *translator, n *Node) {
	if _, ok := t.admonitionOpen[n]; !ok {
		return
	}
	delete(t.admonitionOpen, n)
	t.w.finishLevel()
}

func enterNote(t *translator, n *Node) WalkStatus {
	t.w.add("**NOTE**: ")
	return WalkContinue
}

func enterWarning(t *translator, n *Node) WalkStatus {
	t.w.add("**WARNING**: ")
	return WalkContinue
}

// Deprecation and compatibility markers. The node's type attribute holds the
// modification kind ("deprecated", "versionchanged", ...).
func enterVersionModified(t *translator, n *Node) WalkStatus {
	t.w.add("**" + capitalize(n.Attr("type")) + ":** ")
	return WalkContinue
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Images resolve against the current document's folder so a shared output
// tree keeps working when several documents reference the same asset.
func enterImage(t *translator, n *Node) WalkStatus {
	uri := n.Attr("uri")
	folder := docFolder(t.docName)
	if folder != "" && strings.HasPrefix(uri, folder) {
		uri = uri[len(folder):]
		if strings.HasPrefix(uri, "/") {
			uri = "." + uri
		}
	}
	t.w.add("\n\n![image](" + uri + ")\n\n")
	return WalkContinue
}

// docFolder returns the slash-separated parent of a document name, or ""
// when the name has no folder part.
func docFolder(docName string) string {
	if i := strings.LastIndex(docName, "/"); i >= 0 {
		return docName[:i]
	}
	return ""
}

// Field lists (parameters, returns, raises) and definition lists render as
// HTML description lists. Markdown's native list syntax cannot nest
// term/definition pairs reliably.

func enterFieldList(t *translator, n *Node) WalkStatus {
	t.w.add("<dl>")
	return WalkContinue
}

func exitFieldList(t *translator, n *Node) {
	t.w.add("</dl>\n\n")
}

func enterField(t *translator, n *Node) WalkStatus {
	t.w.add("\n")
	return WalkContinue
}

func exitField(t *translator, n *Node) {
	t.w.add("\n")
}

func enterFieldName(t *translator, n *Node) WalkStatus {
	t.w.add("\n**<dt>")
	return WalkContinue
}

func exitFieldName(t *translator, n *Node) {
	t.w.add("</dt>**\n")
}

func enterFieldBody(t *translator, n *Node) WalkStatus {
	t.w.add("<dd>\n\n")
	if len(n.Children) == 0 {
		t.w.add(" ")
	}
	return WalkContinue
}

func exitFieldBody(t *translator, n *Node) {
	t.w.add("</dd>")
}

func enterDescription(t *translator, n *Node) WalkStatus {
	t.w.add("<dd>\n\n")
	return WalkContinue
}

func exitDescription(t *translator, n *Node) {
	t.w.add("</dd>")
}

func enterDefinitionList(t *translator, n *Node) WalkStatus {
	t.w.add("<dl>\n")
	return WalkContinue
}

func exitDefinitionList(t *translator, n *Node) {
	t.w.add("</dl>\n\n")
}

func enterTerm(t *translator, n *Node) WalkStatus {
	t.w.add("<dt>")
	return WalkContinue
}

func exitTerm(t *translator, n *Node) {
	t.w.add("</dt>")
}

func enterDefinition(t *translator, n *Node) WalkStatus {
	t.w.add("</dt>")
	t.w.add("<dd>")
	t.w.add("\n\n")
	t.w.startLevel("  ")
	return WalkContinue
}

func exitDefinition(t *translator, n *Node) {
	t.w.add("</dd>\n")
	t.w.finishLevel()
}
