package tree

import (
	"errors"
	"testing"
)

func TestReroot_TargetIsRoot(t *testing.T) {
	root := Internal("", Leaf("A"), Leaf("B"))
	if got := Reroot(root, root); got != root {
		t.Errorf("Reroot(root, root) changed the root")
	}
}

func TestReroot_LeafOutgroup(t *testing.T) {
	// ((A,B),C) rerooted on A: A becomes the first child of the new root,
	// every leaf survives.
	a := Leaf("A")
	inner := Internal("", a, Leaf("B"))
	root := Internal("", inner, Leaf("C"))

	got := Reroot(root, a)

	if len(got.Children) != 2 {
		t.Fatalf("new root has %d children, want 2", len(got.Children))
	}
	if got.Children[0] != a {
		t.Errorf("first child of the new root is not the target")
	}
	leaves := got.Leaves()
	if len(leaves) != 3 {
		t.Fatalf("len(leaves) = %d, want 3", len(leaves))
	}
	for _, name := range []string{"A", "B", "C"} {
		if got.Find(name) == nil {
			t.Errorf("leaf %q missing after reroot", name)
		}
	}
}

func TestReroot_InternalOutgroup(t *testing.T) {
	inner := Internal("clade", Leaf("A"), Leaf("B"))
	root := Internal("", inner, Leaf("C"), Leaf("D"))

	got := Reroot(root, inner)

	if got.Children[0] != inner {
		t.Errorf("first child of the new root is not the target clade")
	}
	if n := got.CountLeaves(); n != 4 {
		t.Errorf("CountLeaves() = %d, want 4", n)
	}
	// The old root hangs below the new root with its remaining children.
	rest := got.Children[1]
	if rest.Find("C") == nil || rest.Find("D") == nil {
		t.Errorf("remainder subtree lost the old root's other children")
	}
}

func TestReroot_DeepTarget_ReversesPath(t *testing.T) {
	b := Leaf("B")
	lvl2 := Internal("", b, Leaf("C"))
	lvl1 := Internal("", lvl2, Leaf("D"))
	root := Internal("", lvl1, Leaf("E"))

	got := Reroot(root, b)

	if got.Children[0] != b {
		t.Fatalf("target is not the first child after reroot")
	}
	if n := got.CountLeaves(); n != 4 {
		t.Errorf("CountLeaves() = %d, want 4", n)
	}
	// Each former ancestor must appear exactly once below the new root.
	seen := map[*Node]int{}
	got.Walk(func(n *Node) bool { seen[n]++; return true })
	for _, n := range []*Node{lvl1, lvl2} {
		if seen[n] != 1 {
			t.Errorf("ancestor appears %d times after reroot, want 1", seen[n])
		}
	}
}

func TestRerootAt_Found(t *testing.T) {
	root := Internal("", Internal("", Leaf("A"), Leaf("B")), Leaf("C"))

	got, err := RerootAt(root, "B")
	if err != nil {
		t.Fatalf("RerootAt() error = %v", err)
	}
	if got.Children[0].Label() != "B" {
		t.Errorf("first child = %q, want %q", got.Children[0].Label(), "B")
	}
}

func TestRerootAt_NotFound(t *testing.T) {
	root := Internal("", Leaf("A"), Leaf("B"))

	_, err := RerootAt(root, "nope")
	if !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("RerootAt() error = %v, want ErrTargetNotFound", err)
	}
}
