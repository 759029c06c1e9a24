package mdw

import (
	"strconv"
	"strings"
)

// handler is the enter/exit rule pair for one node kind. A nil func means
// the hook emits nothing for that kind.
type handler struct {
	enter func(t *translator, n *Node) WalkStatus
	exit  func(t *translator, n *Node)
}

type listScope struct {
	ordered bool
	index   int
}

// translator holds all per-pass rendering state. A fresh instance is created
// for every document so parallel renders never share anything.
type translator struct {
	w      *writer
	quotes *quoteTracker

	docName   string
	targetURI func(docname string) string
	cfg       renderConfig

	sectionLevel int
	lists        []listScope

	tables     []*Node
	theads     []*Node
	tbodys     []*Node
	rowEntries []*Node

	admonitionOpen map[*Node]struct{}
}

func newTranslator(docName string, targetURI func(string) string, cfg renderConfig) *translator {
	w := newWriter()
	return &translator{
		w:         w,
		quotes:    &quoteTracker{w: w},
		docName:   docName,
		targetURI: targetURI,
		cfg:       cfg,

		admonitionOpen: make(map[*Node]struct{}),
	}
}

// Enter implements Visitor.
func (t *translator) Enter(n *Node) WalkStatus {
	h, ok := handlers[n.Kind]
	if !ok {
		if t.cfg.unknownKind != nil {
			t.cfg.unknownKind(n.Kind)
		}
		return WalkContinue
	}
	if h.enter == nil {
		return WalkContinue
	}
	return h.enter(t, n)
}

// Exit implements Visitor.
func (t *translator) Exit(n *Node) {
	if h, ok := handlers[n.Kind]; ok && h.exit != nil {
		h.exit(t, n)
	}
}

// handlers maps every known node kind to its formatting rule. Kinds absent
// from this table fall through to default child traversal.
var handlers map[NodeKind]handler

func init() {
	handlers = map[NodeKind]handler{
		KindDocument: {},
		KindText: {
			enter: func(t *translator, n *Node) WalkStatus {
				t.quotes.escape(n.Text)
				return WalkContinue
			},
		},
		KindSection: {
			enter: func(t *translator, n *Node) WalkStatus {
				t.sectionLevel++
				return WalkContinue
			},
			exit: func(t *translator, n *Node) {
				t.sectionLevel--
			},
		},
		KindTitle: {
			enter: func(t *translator, n *Node) WalkStatus {
				reformatTitle(n)
				t.w.add(strings.Repeat("#", t.headingDepth()) + " ")
				return WalkContinue
			},
			exit: func(t *translator, n *Node) {
				t.w.add("\n\n")
			},
		},
		KindParagraph: {
			exit: func(t *translator, n *Node) {
				t.w.add("\n\n")
			},
		},
		KindBulletList: {
			enter: func(t *translator, n *Node) WalkStatus {
				t.lists = append(t.lists, listScope{})
				return WalkContinue
			},
			exit: func(t *translator, n *Node) {
				t.lists = t.lists[:len(t.lists)-1]
			},
		},
		KindEnumeratedList: {
			enter: func(t *translator, n *Node) WalkStatus {
				t.lists = append(t.lists, listScope{ordered: true})
				return WalkContinue
			},
			exit: func(t *translator, n *Node) {
				t.lists = t.lists[:len(t.lists)-1]
			},
		},
		KindListItem: {
			enter: func(t *translator, n *Node) WalkStatus {
				marker := "* "
				if len(t.lists) > 0 {
					scope := &t.lists[len(t.lists)-1]
					scope.index++
					if scope.ordered {
						marker = strconv.Itoa(scope.index) + ". "
					}
				}
				t.w.add(marker)
				t.w.startLevel("  ")
				return WalkContinue
			},
			exit: func(t *translator, n *Node) {
				t.w.finishLevel()
			},
		},
		KindLiteral: {
			enter: func(t *translator, n *Node) WalkStatus {
				t.quotes.push()
				return WalkContinue
			},
			exit: func(t *translator, n *Node) {
				t.quotes.pop()
			},
		},
		KindLiteralBlock: {
			enter: func(t *translator, n *Node) WalkStatus {
				t.w.add("```" + n.Attr("language") + "\n")
				t.w.add(n.AsText())
				t.w.add("\n```\n\n")
				return WalkSkipNode
			},
		},
		KindTransition: {
			enter: func(t *translator, n *Node) WalkStatus {
				t.w.add("---\n\n")
				return WalkSkipChildren
			},
		},
		KindEmphasis: {
			enter: func(t *translator, n *Node) WalkStatus {
				t.w.add("*")
				return WalkContinue
			},
			exit: func(t *translator, n *Node) {
				t.w.add("*")
			},
		},
		KindStrong: {
			enter: func(t *translator, n *Node) WalkStatus {
				t.w.add("<b>")
				return WalkContinue
			},
			exit: func(t *translator, n *Node) {
				t.w.add("</b>")
			},
		},
		KindLiteralStrong: {
			enter: func(t *translator, n *Node) WalkStatus {
				t.w.add("**")
				return WalkContinue
			},
			exit: func(t *translator, n *Node) {
				t.w.add("**")
			},
		},
		KindLiteralEmphasis: {
			enter: func(t *translator, n *Node) WalkStatus {
				t.w.add("*")
				return WalkContinue
			},
			exit: func(t *translator, n *Node) {
				t.w.add("*")
			},
		},
		KindCaption: {
			exit: func(t *translator, n *Node) {
				t.w.add("\n")
			},
		},
		KindRubric: {
			enter: func(t *translator, n *Node) WalkStatus {
				t.w.add("### ")
				return WalkContinue
			},
			exit: func(t *translator, n *Node) {
				t.w.add("\n\n")
			},
		},
		KindTitleReference: {},
		KindComment: {
			enter: skipSubtree,
		},
		KindSubstitutionDef: {
			enter: skipSubtree,
		},
		KindSystemMessage: {
			enter: skipSubtree,
		},

		KindReference: {enter: enterReference},
		KindImage:     {enter: enterImage},

		KindAdmonition:      {enter: enterAdmonition, exit: exitAdmonition},
		KindNote:            {enter: enterNote},
		KindWarning:         {enter: enterWarning},
		KindVersionModified: {enter: enterVersionModified},

		KindDesc:              {enter: enterDesc, exit: exitDesc},
		KindDescSignature:     {enter: enterDescSignature, exit: exitDescSignature},
		KindDescAnnotation:    {enter: enterDescAnnotation, exit: exitDescAnnotation},
		KindDescAddname:       {enter: enterDescAddname, exit: exitDescAddname},
		KindDescName:          {enter: enterDescName, exit: exitDescName},
		KindDescContent:       {enter: enterDescContent, exit: exitDescContent},
		KindDescParameterList: {enter: enterDescParameterList, exit: exitDescParameterList},
		KindDescParameter:     {enter: enterDescParameter, exit: exitDescParameter},
		KindDescReturns:       {enter: enterDescReturns, exit: exitDescReturns},
		KindDescription:       {enter: enterDescription, exit: exitDescription},

		KindDefinitionList:     {enter: enterDefinitionList, exit: exitDefinitionList},
		KindDefinitionListItem: {},
		KindTerm:               {enter: enterTerm, exit: exitTerm},
		KindDefinition:         {enter: enterDefinition, exit: exitDefinition},

		KindFieldList: {enter: enterFieldList, exit: exitFieldList},
		KindField:     {enter: enterField, exit: exitField},
		KindFieldName: {enter: enterFieldName, exit: exitFieldName},
		KindFieldBody: {enter: enterFieldBody, exit: exitFieldBody},

		KindTable:          {enter: enterTable, exit: exitTable},
		KindTGroup:         {},
		KindColSpec:        {},
		KindTabularColSpec: {},
		KindAutosummaryTbl: {},
		KindTHead:          {enter: enterTHead, exit: exitTHead},
		KindTBody:          {enter: enterTBody, exit: exitTBody},
		KindRow:            {enter: enterRow, exit: exitRow},
		KindEntry:          {enter: enterEntry, exit: exitEntry},
	}
}

func skipSubtree(t *translator, n *Node) WalkStatus {
	return WalkSkipNode
}

// headingDepth clamps the section depth to at least one hash.
func (t *translator) headingDepth() int {
	if t.sectionLevel < 1 {
		return 1
	}
	return t.sectionLevel
}
