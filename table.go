package mdw

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// Table layout accumulates rows while a table is open and pads every cell to
// the widest rendered text in its column, scanning all rows of the table
// (not just the header) so the emitted columns line up visually.

func enterTable(t *translator, n *Node) WalkStatus {
	t.tables = append(t.tables, n)
	return WalkContinue
}

func exitTable(t *translator, n *Node) {
	t.tables = t.tables[:len(t.tables)-1]
}

func enterTHead(t *translator, n *Node) WalkStatus {
	if len(t.tables) == 0 {
		return WalkSkipNode
	}
	t.theads = append(t.theads, n)
	return WalkContinue
}

// exitTHead emits the header/body separator line, one dash cell per buffered
// header column, each sized to the widest cell of that column in any row.
func exitTHead(t *translator, n *Node) {
	for i := range t.rowEntries {
		t.w.add("| " + strings.Repeat("-", t.columnWidth(i)) + " ")
	}
	t.w.add("|\n")
	t.rowEntries = nil
	t.theads = t.theads[:len(t.theads)-1]
}

func enterTBody(t *translator, n *Node) WalkStatus {
	if len(t.tables) == 0 {
		return WalkSkipNode
	}
	t.tbodys = append(t.tbodys, n)
	return WalkContinue
}

func exitTBody(t *translator, n *Node) {
	t.tbodys = t.tbodys[:len(t.tbodys)-1]
}

// Rows and entries outside an open header or body section are not table
// markup; they are skipped rather than rendered or reported.
func enterRow(t *translator, n *Node) WalkStatus {
	if len(t.theads) == 0 && len(t.tbodys) == 0 {
		return WalkSkipNode
	}
	return WalkContinue
}

func exitRow(t *translator, n *Node) {
	t.w.add("|\n")
	// Header rows keep the entry buffer alive for the separator emitted at
	// header close; body rows start over.
	if len(t.theads) == 0 {
		t.rowEntries = nil
	}
}

func enterEntry(t *translator, n *Node) WalkStatus {
	if len(t.tables) == 0 || (len(t.theads) == 0 && len(t.tbodys) == 0) {
		return WalkSkipNode
	}
	t.rowEntries = append(t.rowEntries, n)
	t.w.add("| ")
	return WalkContinue
}

// exitEntry right-pads the cell to its column width plus one separator space.
func exitEntry(t *translator, n *Node) {
	i := len(t.rowEntries) - 1
	pad := t.columnWidth(i) - ansi.PrintableRuneWidth(n.AsText())
	if pad < 0 {
		pad = 0
	}
	t.w.add(strings.Repeat(" ", pad) + " ")
}

// columnWidth scans every row of the innermost open table and returns the
// maximum rendered width of the given column. Ragged rows are tolerated:
// rows without that column simply do not participate.
func (t *translator) columnWidth(col int) int {
	width := 0
	for _, row := range t.tableRows() {
		if len(row.Children) <= col {
			continue
		}
		if w := ansi.PrintableRuneWidth(row.Children[col].AsText()); w > width {
			width = w
		}
	}
	return width
}

// tableRows collects the row nodes of the innermost open table, descending
// through section wrappers (tgroup, thead, tbody).
func (t *translator) tableRows() []*Node {
	if len(t.tables) == 0 {
		return nil
	}
	var rows []*Node
	collectRows(t.tables[len(t.tables)-1], &rows)
	return rows
}

func collectRows(n *Node, rows *[]*Node) {
	for _, c := range n.Children {
		if c.Kind == KindRow {
			*rows = append(*rows, c)
			continue
		}
		collectRows(c, rows)
	}
}
