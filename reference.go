package mdw

import (
	"path"
	"strings"
)

// References always render as a single inline link whose label is the
// node's flattened text; the subtree is never traversed independently.
func enterReference(t *translator, n *Node) WalkStatus {
	target := t.resolveReference(n)
	// The downstream renderer's anchor slugs drop dots, while the front end
	// still encodes them. Strip them from the fragment, never the path.
	parts := strings.Split(target, "#")
	if len(parts) > 1 {
		parts[1] = strings.ReplaceAll(parts[1], ".", "")
		target = strings.Join(parts, "#")
	}
	t.w.add("[" + n.AsText() + "](" + target + ")")
	return WalkSkipNode
}

// resolveReference rewrites a reference target for flat Markdown output.
// External references pass through verbatim. Internal references without a
// target link to a same-document fragment named after the reference title.
// Internal references with a target resolve relative to the current
// document's folder, with an optional fragment appended.
func (t *translator) resolveReference(n *Node) string {
	if !n.BoolAttr("internal") {
		return n.Attr("refuri")
	}
	if !n.HasAttr("refuri") {
		return "#" + n.Attr("reftitle")
	}

	url := n.Attr("refuri")
	if url == "" {
		url = t.outputURI(t.docName)
	} else if folder := docFolder(t.docName); folder != "" {
		url = path.Clean(folder + "/" + url)
	}
	if n.HasAttr("refid") {
		url += "#" + n.Attr("refid")
	}
	return url
}

// outputURI maps a document name to its final output-relative URI using the
// caller-supplied lookup, defaulting to the name itself.
func (t *translator) outputURI(docName string) string {
	if t.targetURI != nil {
		return t.targetURI(docName)
	}
	return docName
}
