package mdw

import "testing"

func ref(attrs map[string]any, label string) *Node {
	return elAttrs(KindReference, attrs, txt(label))
}

func TestExternalReferenceVerbatim(t *testing.T) {
	out := renderDoc(t, doc(ref(map[string]any{
		"refuri":   "https://example.com",
		"internal": false,
	}, "Example")))
	if out != "[Example](https://example.com)" {
		t.Fatalf("got %q", out)
	}
}

func TestInternalReferenceWithoutTargetUsesTitleFragment(t *testing.T) {
	out := renderDoc(t, doc(ref(map[string]any{
		"internal": true,
		"reftitle": "Overview",
	}, "see overview")))
	if out != "[see overview](#Overview)" {
		t.Fatalf("got %q", out)
	}
}

func TestInternalReferenceEmptyTargetResolvesToSelf(t *testing.T) {
	out := renderDoc(t, doc(ref(map[string]any{
		"internal": true,
		"refuri":   "",
		"refid":    "foo.bar",
	}, "label")))
	// Dots are stripped from the fragment only, never the document path.
	if out != "[label](pkg/mod#foobar)" {
		t.Fatalf("got %q", out)
	}
}

func TestInternalReferenceRelativeTarget(t *testing.T) {
	cases := []struct {
		refuri string
		refid  any
		want   string
	}{
		{"other", nil, "[label](pkg/other)"},
		{"other", "a.b.c", "[label](pkg/other#abc)"},
		{"../sibling", nil, "[label](sibling)"},
		{"sub/page", nil, "[label](pkg/sub/page)"},
	}
	for _, tc := range cases {
		attrs := map[string]any{"internal": true, "refuri": tc.refuri}
		if tc.refid != nil {
			attrs["refid"] = tc.refid
		}
		out := renderDoc(t, doc(ref(attrs, "label")))
		if out != tc.want {
			t.Fatalf("refuri %q: got %q want %q", tc.refuri, out, tc.want)
		}
	}
}

func TestInternalReferenceUsesTargetURILookup(t *testing.T) {
	lookup := func(docname string) string { return docname + ".md" }
	out := renderDocNamed(t, doc(ref(map[string]any{
		"internal": true,
		"refuri":   "",
		"refid":    "x",
	}, "label")), "guide/setup", lookup)
	if out != "[label](guide/setup.md#x)" {
		t.Fatalf("got %q", out)
	}
}

func TestReferenceChildrenNeverTraversed(t *testing.T) {
	// A nested emphasis inside the reference must contribute only its text.
	node := elAttrs(KindReference, map[string]any{
		"refuri":   "https://example.com",
		"internal": false,
	}, txt("a "), el(KindEmphasis, txt("b")))
	out := renderDoc(t, doc(node))
	if out != "[a b](https://example.com)" {
		t.Fatalf("got %q", out)
	}
}

func TestFragmentDotStrippingLeavesPathAlone(t *testing.T) {
	out := renderDocNamed(t, doc(ref(map[string]any{
		"internal": true,
		"refuri":   "pkg.other.md",
		"refid":    "mod.attr",
	}, "label")), "a.b/mod", nil)
	if out != "[label](a.b/pkg.other.md#modattr)" {
		t.Fatalf("got %q", out)
	}
}
