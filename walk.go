package mdw

// WalkStatus is returned by an enter hook to steer traversal of the
// current node.
type WalkStatus int

const (
	// WalkContinue descends into the node's children.
	WalkContinue WalkStatus = iota
	// WalkSkipChildren skips the children but still runs the exit hook.
	WalkSkipChildren
	// WalkSkipNode abandons the subtree entirely; the exit hook is not run.
	WalkSkipNode
)

// Visitor receives enter and exit callbacks during a depth-first walk.
type Visitor interface {
	Enter(n *Node) WalkStatus
	Exit(n *Node)
}

// Walk traverses the tree rooted at n depth-first, invoking the visitor's
// Enter hook before a node's children and Exit after them.
func Walk(n *Node, v Visitor) {
	switch v.Enter(n) {
	case WalkSkipNode:
		return
	case WalkSkipChildren:
	default:
		// Children may be detached by an enter hook (admonition titles),
		// so the slice is re-read on every step.
		for i := 0; i < len(n.Children); i++ {
			Walk(n.Children[i], v)
		}
	}
	v.Exit(n)
}
