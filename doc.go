// Package mdw renders a parsed documentation tree to Markdown.
//
// The input is a finalized doctree produced by an upstream documentation
// front end: a tree of typed nodes (sections, signatures, tables, references)
// with all cross-references already resolved. This package walks that tree
// depth-first and emits Markdown text, one node at a time, through per-kind
// enter/exit rules.
//
// Core properties:
//   - Passive visitor: the walker drives traversal, rules only react
//   - Fresh translator state per document; concurrent renders never share
//   - Display-width-aware table column alignment
//   - Flat anchor rewriting for in-document cross-references
//
// Example:
//
//	doc, err := mdw.DecodeDocument(file)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := mdw.Render(mdw.RenderRequest{
//		Doc:     doc,
//		DocName: "pkg/mymodule",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(out)
//
// Rendering can be customized using RenderOptions such as unknown-kind
// reporting.
package mdw
