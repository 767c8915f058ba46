// Package tree defines the rooted, multifurcating tree model shared by the
// Newick reader and the renderers.
//
// A tree is a strict rooted hierarchy of [Node] values: every node has an
// ordered sequence of children, a node with no children is a leaf, and two
// distinct nodes may carry the same name. Anything keyed by node must
// therefore use node identity (the *Node pointer), never name equality.
//
// Names and branch lengths are explicit optionals (nil means absent), so an
// empty-string name and a missing name stay distinguishable through parsing
// and transformation.
package tree

import "errors"

// ErrTargetNotFound is returned by [RerootAt] when no node in the tree
// carries the requested name.
var ErrTargetNotFound = errors.New("reroot target not found")

// Node is a single clade: an internal node or a leaf.
//
// Children order is significant - it determines the left-to-right leaf order
// of every rendering. Length is the branch length to the parent as read from
// the input; the box renderer ignores it but it is preserved for round-trips.
type Node struct {
	Name     *string
	Length   *float64
	Children []*Node
}

// Leaf creates a leaf node. An empty name means the leaf is unnamed.
func Leaf(name string) *Node {
	n := &Node{}
	if name != "" {
		n.Name = &name
	}
	return n
}

// Internal creates an internal node with the given (possibly empty) name
// and children.
func Internal(name string, children ...*Node) *Node {
	n := &Node{Children: children}
	if name != "" {
		n.Name = &name
	}
	return n
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Named reports whether the node carries a non-empty name.
func (n *Node) Named() bool { return n.Name != nil && *n.Name != "" }

// Label returns the node's name, or the empty string when absent.
func (n *Node) Label() string {
	if n.Name == nil {
		return ""
	}
	return *n.Name
}

// Walk visits every node in pre-order (parent before children, children in
// order). The walk stops early if fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node in pre-order whose name equals name,
// or nil if no such node exists.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.Label() == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// Leaves returns all leaves in left-to-right order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(c *Node) bool {
		if c.IsLeaf() {
			leaves = append(leaves, c)
		}
		return true
	})
	return leaves
}

// Count returns the total number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool { total++; return true })
	return total
}

// CountLeaves returns the number of leaves in the subtree rooted at n.
func (n *Node) CountLeaves() int {
	total := 0
	n.Walk(func(c *Node) bool {
		if c.IsLeaf() {
			total++
		}
		return true
	})
	return total
}
