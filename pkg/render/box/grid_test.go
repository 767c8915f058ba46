package box

import "testing"

func TestPut_EmptyCell(t *testing.T) {
	g := newGrid(1, 1, Unicode)
	g.put(0, 0, Unicode.Horizontal)
	if g.cells[0][0] != Unicode.Horizontal {
		t.Errorf("cell = %q, want %q", g.cells[0][0], Unicode.Horizontal)
	}
}

func TestPut_PerpendicularStrokesMergeToCross(t *testing.T) {
	g := newGrid(1, 2, Unicode)

	g.put(0, 0, Unicode.Vertical)
	g.put(0, 0, Unicode.Horizontal)
	if g.cells[0][0] != Unicode.Cross {
		t.Errorf("vertical then horizontal = %q, want %q", g.cells[0][0], Unicode.Cross)
	}

	g.put(0, 1, Unicode.Horizontal)
	g.put(0, 1, Unicode.Vertical)
	if g.cells[0][1] != Unicode.Cross {
		t.Errorf("horizontal then vertical = %q, want %q", g.cells[0][1], Unicode.Cross)
	}
}

func TestPut_StrokeNeverDowngradesJunction(t *testing.T) {
	junctions := []rune{Unicode.CornerTop, Unicode.CornerBottom, Unicode.Tee, Unicode.Cross}
	for _, j := range junctions {
		g := newGrid(1, 1, Unicode)
		g.put(0, 0, j)
		g.put(0, 0, Unicode.Vertical)
		g.put(0, 0, Unicode.Horizontal)
		if g.cells[0][0] != j {
			t.Errorf("junction %q was downgraded to %q", j, g.cells[0][0])
		}
	}
}

func TestPut_JunctionReplacesStroke(t *testing.T) {
	g := newGrid(1, 1, Unicode)
	g.put(0, 0, Unicode.Vertical)
	g.put(0, 0, Unicode.Tee)
	if g.cells[0][0] != Unicode.Tee {
		t.Errorf("cell = %q, want %q", g.cells[0][0], Unicode.Tee)
	}
}

func TestPut_FirstJunctionWins(t *testing.T) {
	g := newGrid(1, 1, Unicode)
	g.put(0, 0, Unicode.CornerTop)
	g.put(0, 0, Unicode.CornerBottom)
	if g.cells[0][0] != Unicode.CornerTop {
		t.Errorf("cell = %q, want first junction %q", g.cells[0][0], Unicode.CornerTop)
	}
}

func TestPut_SameStrokeKeepsCell(t *testing.T) {
	g := newGrid(1, 1, Unicode)
	g.put(0, 0, Unicode.Horizontal)
	g.put(0, 0, Unicode.Horizontal)
	if g.cells[0][0] != Unicode.Horizontal {
		t.Errorf("cell = %q, want %q", g.cells[0][0], Unicode.Horizontal)
	}
}

func TestPut_OutOfBoundsIgnored(t *testing.T) {
	g := newGrid(2, 2, Unicode)
	g.put(-1, 0, Unicode.Vertical)
	g.put(0, -1, Unicode.Vertical)
	g.put(2, 0, Unicode.Vertical)
	g.put(0, 2, Unicode.Vertical)

	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != blank {
				t.Errorf("cell (%d,%d) = %q, want blank", y, x, g.cells[y][x])
			}
		}
	}
}

func TestPut_ASCIIGlyphsFollowSamePolicy(t *testing.T) {
	g := newGrid(1, 1, ASCII)
	g.put(0, 0, ASCII.Vertical)
	g.put(0, 0, ASCII.Horizontal)
	if g.cells[0][0] != ASCII.Cross {
		t.Errorf("cell = %q, want %q", g.cells[0][0], ASCII.Cross)
	}
}
