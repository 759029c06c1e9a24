package mdw

import (
	"strings"
	"testing"
)

func TestAnnotatedParameterSplit(t *testing.T) {
	params := el(KindDescParameterList,
		el(KindDescParameter, txt("x: int")),
		el(KindDescParameter, txt("y")),
	)
	out := renderDoc(t, doc(params))
	want := "`(`_`x`_`: `__`int`__`, `_``y``_`)`"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestTrailingCommaOnlyBetweenParameters(t *testing.T) {
	single := el(KindDescParameterList,
		el(KindDescParameter, txt("x: int")),
	)
	out := renderDoc(t, doc(single))
	if strings.Contains(out, ", ") {
		t.Fatalf("lone parameter must not end with a comma: %q", out)
	}
	if !strings.Contains(out, "x`_`: `__`int`__`") {
		t.Fatalf("missing split parameter rendering: %q", out)
	}

	pair := el(KindDescParameterList,
		el(KindDescParameter, txt("x: int")),
		el(KindDescParameter, txt("y: str")),
	)
	out = renderDoc(t, doc(pair))
	if !strings.Contains(out, "`__`int`__`, ") {
		t.Fatalf("missing comma after first parameter: %q", out)
	}
	if strings.Contains(out, "`__`str`__`, ") {
		t.Fatalf("unexpected comma after last parameter: %q", out)
	}
}

func TestDescSignatureRendersAnchorComment(t *testing.T) {
	sig := elAttrs(KindDescSignature,
		map[string]any{"ids": []any{"pkg.foo"}, "first": true},
		el(KindDescAddname, txt("pkg.")),
		el(KindDescName, txt("foo")),
		el(KindDescParameterList, el(KindDescParameter, txt("x: int"))),
	)
	desc := elAttrs(KindDesc, map[string]any{"objtype": "function"},
		sig,
		el(KindDescContent, el(KindParagraph, txt("Does a thing."))),
	)
	out := renderDoc(t, doc(desc))
	want := "<dl><dt>\n\n<!--[pkg.foo]-->``pkg.``**``foo``**`(`_`x`_`: `__`int`__`)`\n</dt>\n<dd>\n\nDoes a thing.\n\n</dd>\n\n\n</dl>\n\n"
	if out != want {
		t.Fatalf("got:\n%q\nwant:\n%q", out, want)
	}
}

func TestDescribeSignatureOmitsAnchor(t *testing.T) {
	sig := elAttrs(KindDescSignature,
		map[string]any{"ids": []any{"x"}, "first": true},
		el(KindDescName, txt("thing")),
	)
	desc := elAttrs(KindDesc, map[string]any{"objtype": "describe"}, sig)
	out := renderDoc(t, doc(desc))
	if strings.Contains(out, "<!--[") {
		t.Fatalf("describe object must not emit an anchor comment: %q", out)
	}
}

func TestMultilineSignatureSkipsClosingTag(t *testing.T) {
	sig := elAttrs(KindDescSignature,
		map[string]any{"is_multiline": true},
		el(KindDescName, txt("f")),
	)
	out := renderDoc(t, doc(el(KindDesc, sig)))
	if strings.Contains(out, "\n</dt>\n") {
		t.Fatalf("multiline signature must not close <dt>: %q", out)
	}
}

func TestDescAnnotationSkipsChildren(t *testing.T) {
	ann := el(KindDescAnnotation, txt("  class  "), el(KindEmphasis, txt("ignored")))
	out := renderDoc(t, doc(ann))
	if !strings.Contains(out, " _class") {
		t.Fatalf("missing trimmed annotation text: %q", out)
	}
	if strings.Contains(out, "*ignored*") {
		t.Fatalf("annotation children must not render independently: %q", out)
	}
}

func TestDescReturnsArrowAndQuoting(t *testing.T) {
	returns := el(KindDescReturns, txt("int"))
	out := renderDoc(t, doc(returns))
	want := " → **`" + "`int`" + "`**"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}
