package mdw

import "testing"

func el(kind NodeKind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

func elAttrs(kind NodeKind, attrs map[string]any, children ...*Node) *Node {
	return &Node{Kind: kind, Attrs: attrs, Children: children}
}

func txt(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

func doc(children ...*Node) *Node {
	return el(KindDocument, children...)
}

func renderDoc(t *testing.T, root *Node, opts ...RenderOption) string {
	t.Helper()
	return renderDocNamed(t, root, "pkg/mod", nil, opts...)
}

func renderDocNamed(t *testing.T, root *Node, docName string, targetURI func(string) string, opts ...RenderOption) string {
	t.Helper()
	out, err := Render(RenderRequest{
		Doc:       root,
		DocName:   docName,
		TargetURI: targetURI,
		Options:   opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}
