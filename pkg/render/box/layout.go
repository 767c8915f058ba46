package box

import "github.com/lwoodhull/cladogram/pkg/tree"

// NodeInfo is the grid position computed for one node: Depth is the edge
// count from the root, Row the terminal line the node sits on. Values are
// computed once by [Layout] and never change afterwards.
type NodeInfo struct {
	Depth int
	Row   int
}

// Leaf pairs a leaf's row with its label, in left-to-right traversal order.
type Leaf struct {
	Row   int
	Label string
}

// Layout walks the tree once and assigns every node a (depth, row) pair.
// Leaves receive consecutive rows 0..L-1 in left-to-right order; an internal
// node receives the floor midpoint of its children's rows and a depth one
// greater than its parent's. Lookups are keyed by node identity, so nodes
// sharing a name never collide.
func Layout(root *tree.Node) (map[*tree.Node]NodeInfo, []Leaf) {
	l := &layouter{info: make(map[*tree.Node]NodeInfo, root.Count())}
	l.assign(root, 0, 0)
	return l.info, l.leaves
}

type layouter struct {
	info   map[*tree.Node]NodeInfo
	leaves []Leaf
}

// assign places n and its subtree, consuming rows starting at nextRow.
// It returns n's own row and the next free row, threading the row counter
// through the recursion instead of sharing mutable state.
func (l *layouter) assign(n *tree.Node, depth, nextRow int) (row, next int) {
	if n.IsLeaf() {
		l.info[n] = NodeInfo{Depth: depth, Row: nextRow}
		l.leaves = append(l.leaves, Leaf{Row: nextRow, Label: n.Label()})
		return nextRow, nextRow + 1
	}

	minRow, maxRow := 0, 0
	for i, c := range n.Children {
		var r int
		r, nextRow = l.assign(c, depth+1, nextRow)
		if i == 0 || r < minRow {
			minRow = r
		}
		if i == 0 || r > maxRow {
			maxRow = r
		}
	}

	row = (minRow + maxRow) / 2
	l.info[n] = NodeInfo{Depth: depth, Row: row}
	return row, nextRow
}
