package mdw

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// NodeKind identifies a doctree element type.
type NodeKind string

// Node kinds produced by the upstream front end. Text carries leaf content;
// every other kind is structural.
const (
	KindDocument NodeKind = "document"
	KindSection  NodeKind = "section"
	KindTitle    NodeKind = "title"
	KindText     NodeKind = "text"

	KindParagraph      NodeKind = "paragraph"
	KindBulletList     NodeKind = "bullet_list"
	KindEnumeratedList NodeKind = "enumerated_list"
	KindListItem       NodeKind = "list_item"
	KindLiteral        NodeKind = "literal"
	KindLiteralBlock   NodeKind = "literal_block"
	KindTransition     NodeKind = "transition"
	KindEmphasis       NodeKind = "emphasis"
	KindStrong         NodeKind = "strong"
	KindCaption        NodeKind = "caption"
	KindRubric         NodeKind = "rubric"
	KindImage          NodeKind = "image"

	KindReference      NodeKind = "reference"
	KindTitleReference NodeKind = "title_reference"

	KindAdmonition      NodeKind = "admonition"
	KindNote            NodeKind = "note"
	KindWarning         NodeKind = "warning"
	KindVersionModified NodeKind = "versionmodified"

	KindDesc              NodeKind = "desc"
	KindDescSignature     NodeKind = "desc_signature"
	KindDescAnnotation    NodeKind = "desc_annotation"
	KindDescAddname       NodeKind = "desc_addname"
	KindDescName          NodeKind = "desc_name"
	KindDescContent       NodeKind = "desc_content"
	KindDescParameterList NodeKind = "desc_parameterlist"
	KindDescParameter     NodeKind = "desc_parameter"
	KindDescReturns       NodeKind = "desc_returns"
	KindDescription       NodeKind = "description"

	KindDefinitionList     NodeKind = "definition_list"
	KindDefinitionListItem NodeKind = "definition_list_item"
	KindTerm               NodeKind = "term"
	KindDefinition         NodeKind = "definition"

	KindFieldList NodeKind = "field_list"
	KindField     NodeKind = "field"
	KindFieldName NodeKind = "field_name"
	KindFieldBody NodeKind = "field_body"

	KindLiteralStrong   NodeKind = "literal_strong"
	KindLiteralEmphasis NodeKind = "literal_emphasis"

	KindTable           NodeKind = "table"
	KindTGroup          NodeKind = "tgroup"
	KindColSpec         NodeKind = "colspec"
	KindTabularColSpec  NodeKind = "tabular_col_spec"
	KindTHead           NodeKind = "thead"
	KindTBody           NodeKind = "tbody"
	KindRow             NodeKind = "row"
	KindEntry           NodeKind = "entry"
	KindAutosummaryTbl  NodeKind = "autosummary_table"
	KindComment         NodeKind = "comment"
	KindSubstitutionDef NodeKind = "substitution_definition"
	KindSystemMessage   NodeKind = "system_message"
)

// Node is one element of the input doctree. The tree is constructed entirely
// by the front end; rendering only reads it, except for the in-place title
// rewrite and admonition title detachment performed during a pass.
type Node struct {
	Kind     NodeKind       `json:"kind"`
	Text     string         `json:"text,omitempty"`
	Attrs    map[string]any `json:"attrs,omitempty"`
	Children []*Node        `json:"children,omitempty"`

	parent *Node
	index  int
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeDocument decodes a doctree from its JSON form and wires up parent
// and sibling links.
func DecodeDocument(r io.Reader) (*Node, error) {
	var n Node
	if err := json.NewDecoder(r).Decode(&n); err != nil {
		return nil, fmt.Errorf("decode doctree: %w", err)
	}
	n.wire()
	return &n, nil
}

// wire refreshes parent pointers and child indexes for the whole subtree.
func (n *Node) wire() {
	for i, c := range n.Children {
		c.parent = n
		c.index = i
		c.wire()
	}
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// NextSibling returns the node following n in its parent's child list.
func (n *Node) NextSibling() *Node {
	if n.parent == nil || n.index+1 >= len(n.parent.Children) {
		return nil
	}
	return n.parent.Children[n.index+1]
}

// AsText flattens the subtree into its concatenated leaf text.
func (n *Node) AsText() string {
	if n.Kind == KindText {
		return n.Text
	}
	var b strings.Builder
	n.appendText(&b)
	return b.String()
}

func (n *Node) appendText(b *strings.Builder) {
	if n.Kind == KindText {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.appendText(b)
	}
}

// Attr returns a string attribute, or "" when absent or not a string.
func (n *Node) Attr(key string) string {
	s, _ := n.Attrs[key].(string)
	return s
}

// HasAttr reports whether the attribute is present at all.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attrs[key]
	return ok
}

// BoolAttr returns a boolean attribute; string values "true"/"1" also count.
func (n *Node) BoolAttr(key string) bool {
	switch v := n.Attrs[key].(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1"
	default:
		return false
	}
}

// IDs returns the node's anchor identifiers, if any.
func (n *Node) IDs() []string {
	switch v := n.Attrs["ids"].(type) {
	case []string:
		return v
	case []any:
		ids := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				ids = append(ids, s)
			}
		}
		return ids
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
