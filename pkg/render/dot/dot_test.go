package dot

import (
	"strings"
	"testing"

	"github.com/lwoodhull/cladogram/pkg/tree"
)

func TestToDOT_TwoLeaves(t *testing.T) {
	root := tree.Internal("", tree.Leaf("A"), tree.Leaf("B"))

	got := ToDOT(root)

	for _, want := range []string{
		"digraph tree {",
		"rankdir=LR;",
		`label="A"`,
		`label="B"`,
		"n0 -> n1;",
		"n0 -> n2;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, got)
		}
	}
}

func TestToDOT_UnnamedInternalIsPoint(t *testing.T) {
	root := tree.Internal("", tree.Leaf("A"), tree.Leaf("B"))

	got := ToDOT(root)

	if !strings.Contains(got, "n0 [shape=point];") {
		t.Errorf("ToDOT() unnamed root not rendered as point:\n%s", got)
	}
}

func TestToDOT_NamedInternalIsEllipse(t *testing.T) {
	root := tree.Internal("clade", tree.Leaf("A"), tree.Leaf("B"))

	got := ToDOT(root)

	if !strings.Contains(got, `label="clade", shape=ellipse`) {
		t.Errorf("ToDOT() named internal not rendered as ellipse:\n%s", got)
	}
}

func TestToDOT_EdgeCountMatchesTree(t *testing.T) {
	root := tree.Internal("",
		tree.Internal("", tree.Leaf("A"), tree.Leaf("B")),
		tree.Leaf("C"),
	)

	got := ToDOT(root)

	if n := strings.Count(got, "->"); n != root.Count()-1 {
		t.Errorf("edge count = %d, want %d", n, root.Count()-1)
	}
}

func TestToDOT_DuplicateNamesGetDistinctIDs(t *testing.T) {
	root := tree.Internal("", tree.Leaf("x"), tree.Leaf("x"))

	got := ToDOT(root)

	if !strings.Contains(got, "n1 [") || !strings.Contains(got, "n2 [") {
		t.Errorf("ToDOT() did not assign distinct IDs to same-named leaves:\n%s", got)
	}
}
