package tree

// Collapse removes unary chains: any node with exactly one child is replaced
// by that child, repeatedly, so the result contains no node with a single
// child. Relative leaf order and all multi-child branchings are preserved.
//
// When a collapsed node carries a name and its surviving child does not, the
// name moves to the child; the first non-empty name along a chain wins and an
// existing child name is never overwritten.
//
// The tree is modified in place. The returned root may differ from the
// argument when the root itself heads a unary chain.
func Collapse(root *Node) *Node {
	for len(root.Children) == 1 {
		child := root.Children[0]
		if root.Named() && !child.Named() {
			child.Name = root.Name
		}
		root = child
	}
	for i, c := range root.Children {
		root.Children[i] = Collapse(c)
	}
	return root
}
