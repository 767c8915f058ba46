package tree

import (
	"fmt"
	"slices"
)

// Reroot restructures the tree so that target becomes the first child of a
// new root (outgroup rooting). Edges on the path from target up to the old
// root are reversed; every other parent/child relationship is untouched.
//
// Branch lengths are left on the nodes that carried them, which is fine for
// topology-only rendering. If target is the root or is not part of the tree,
// the root is returned unchanged.
//
// Rerooting can leave the old root as a unary node; callers that collapse
// unary chains should do so after rerooting, not before.
func Reroot(root, target *Node) *Node {
	if target == root {
		return root
	}
	path := pathTo(root, target)
	if path == nil {
		return root
	}

	// Detach target, then reverse each edge along the path so every
	// ancestor hangs below its former child.
	parent := path[len(path)-2]
	parent.removeChild(target)
	for i := len(path) - 2; i > 0; i-- {
		path[i-1].removeChild(path[i])
		path[i].Children = append(path[i].Children, path[i-1])
	}

	return &Node{Children: []*Node{target, parent}}
}

// RerootAt reroots on the first node (pre-order) named name.
// Returns ErrTargetNotFound when no node carries that name.
func RerootAt(root *Node, name string) (*Node, error) {
	target := root.Find(name)
	if target == nil {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, name)
	}
	return Reroot(root, target), nil
}

// pathTo returns the node path [root, ..., target], or nil if target is not
// in the subtree rooted at root.
func pathTo(root, target *Node) []*Node {
	if root == target {
		return []*Node{root}
	}
	for _, c := range root.Children {
		if p := pathTo(c, target); p != nil {
			return append([]*Node{root}, p...)
		}
	}
	return nil
}

func (n *Node) removeChild(child *Node) {
	n.Children = slices.DeleteFunc(n.Children, func(c *Node) bool { return c == child })
}
