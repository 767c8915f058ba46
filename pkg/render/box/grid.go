package box

// Glyphs is the character set used to paint connectors. The four junction
// glyphs mark branch points and crossings; Vertical and Horizontal are the
// plain strokes between them.
type Glyphs struct {
	CornerTop    rune // junction on the top-most child's row
	CornerBottom rune // junction on the bottom-most child's row
	Tee          rune // junction on a middle child's row
	Cross        rune // vertical and horizontal strokes meeting in one cell
	Vertical     rune
	Horizontal   rune
}

// Unicode is the default box-drawing glyph set.
var Unicode = Glyphs{
	CornerTop:    '┌',
	CornerBottom: '└',
	Tee:          '├',
	Cross:        '┼',
	Vertical:     '│',
	Horizontal:   '─',
}

// ASCII is a 7-bit fallback for terminals without box-drawing support.
var ASCII = Glyphs{
	CornerTop:    '+',
	CornerBottom: '+',
	Tee:          '+',
	Cross:        '+',
	Vertical:     '|',
	Horizontal:   '-',
}

const blank = ' '

// grid is the mutable character canvas for one render. It is written only
// through put, which resolves overlapping strokes with a fixed precedence:
// an existing junction or crossing is never downgraded, an incoming junction
// replaces a plain stroke, and perpendicular plain strokes merge into the
// crossing glyph. Everything else keeps the first writer's cell.
type grid struct {
	cells  [][]rune
	glyphs Glyphs
}

func newGrid(rows, cols int, glyphs Glyphs) *grid {
	cells := make([][]rune, rows)
	for y := range cells {
		row := make([]rune, cols)
		for x := range row {
			row[x] = blank
		}
		cells[y] = row
	}
	return &grid{cells: cells, glyphs: glyphs}
}

func (g *grid) put(y, x int, ch rune) {
	if y < 0 || y >= len(g.cells) || x < 0 || x >= len(g.cells[y]) {
		return
	}
	existing := g.cells[y][x]
	switch {
	case existing == blank:
		g.cells[y][x] = ch
	case g.isJunction(existing):
		// first junction wins, including against later junctions
	case g.isJunction(ch):
		g.cells[y][x] = ch
	case existing == g.glyphs.Vertical && ch == g.glyphs.Horizontal,
		existing == g.glyphs.Horizontal && ch == g.glyphs.Vertical:
		g.cells[y][x] = g.glyphs.Cross
	}
}

func (g *grid) isJunction(ch rune) bool {
	return ch == g.glyphs.CornerTop || ch == g.glyphs.CornerBottom ||
		ch == g.glyphs.Tee || ch == g.glyphs.Cross
}

// lastInk returns the right-most non-blank column of a row, or -1 for an
// all-blank row.
func (g *grid) lastInk(y int) int {
	row := g.cells[y]
	for x := len(row) - 1; x >= 0; x-- {
		if row[x] != blank {
			return x
		}
	}
	return -1
}
