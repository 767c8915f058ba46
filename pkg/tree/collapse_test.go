package tree

import (
	"strings"
	"testing"
)

// shape renders the topology as a compact string for comparison.
func shape(n *Node) string {
	if n.IsLeaf() {
		return n.Label()
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = shape(c)
	}
	return n.Label() + "(" + strings.Join(parts, ",") + ")"
}

func TestCollapse_NoUnaryNodes(t *testing.T) {
	root := Internal("", Internal("", Leaf("A"), Leaf("B")), Leaf("C"))

	got := Collapse(root)

	if got != root {
		t.Errorf("Collapse() replaced the root of a tree without unary chains")
	}
	if s := shape(got); s != "((A,B),C)" {
		t.Errorf("shape = %q, want %q", s, "((A,B),C)")
	}
}

func TestCollapse_UnaryChainInside(t *testing.T) {
	// B is reached through two unary wrappers.
	root := Internal("", Leaf("A"), Internal("", Internal("", Leaf("B"))))

	got := Collapse(root)

	if s := shape(got); s != "(A,B)" {
		t.Errorf("shape = %q, want %q", s, "(A,B)")
	}
}

func TestCollapse_RootChain(t *testing.T) {
	inner := Internal("", Leaf("A"), Leaf("B"))
	root := Internal("", Internal("", inner))

	got := Collapse(root)

	if got != inner {
		t.Errorf("Collapse() did not collapse the root chain down to the branching node")
	}
}

func TestCollapse_RootChainToLeaf(t *testing.T) {
	leaf := Leaf("A")
	root := Internal("", Internal("", leaf))

	got := Collapse(root)

	if got != leaf {
		t.Errorf("Collapse() = %q, want the leaf itself", shape(got))
	}
}

func TestCollapse_NameTransfer(t *testing.T) {
	child := Internal("", Leaf("A"), Leaf("B"))
	root := Internal("clade1", child)

	got := Collapse(root)

	if got.Label() != "clade1" {
		t.Errorf("surviving node label = %q, want %q", got.Label(), "clade1")
	}
}

func TestCollapse_NameNotOverwritten(t *testing.T) {
	child := Internal("keep", Leaf("A"), Leaf("B"))
	root := Internal("drop", child)

	got := Collapse(root)

	if got.Label() != "keep" {
		t.Errorf("surviving node label = %q, want %q", got.Label(), "keep")
	}
}

func TestCollapse_FirstNameWinsAlongChain(t *testing.T) {
	// top has a name, the middle wrapper does not, the branching node does
	// not: the top name must survive on the branching node.
	branching := Internal("", Leaf("A"), Leaf("B"))
	root := Internal("top", Internal("", branching))

	got := Collapse(root)

	if got != branching {
		t.Fatalf("Collapse() did not collapse to the branching node")
	}
	if got.Label() != "top" {
		t.Errorf("surviving node label = %q, want %q", got.Label(), "top")
	}
}

func TestCollapse_Idempotent(t *testing.T) {
	root := Internal("", Internal("x", Internal("", Leaf("A"), Leaf("B"))), Leaf("C"))

	once := Collapse(root)
	first := shape(once)
	twice := Collapse(once)

	if got := shape(twice); got != first {
		t.Errorf("second Collapse() changed the tree: %q -> %q", first, got)
	}
}

func TestCollapse_PreservesLeafOrder(t *testing.T) {
	root := Internal("",
		Internal("", Internal("", Leaf("A"), Leaf("B"))),
		Internal("", Leaf("C")),
		Leaf("D"),
	)

	got := Collapse(root)

	leaves := got.Leaves()
	want := []string{"A", "B", "C", "D"}
	if len(leaves) != len(want) {
		t.Fatalf("len(leaves) = %d, want %d", len(leaves), len(want))
	}
	for i, l := range leaves {
		if l.Label() != want[i] {
			t.Errorf("leaf %d = %q, want %q", i, l.Label(), want[i])
		}
	}
}
