// Package box renders a rooted tree as a box-drawing diagram for terminal
// display: topology only, tree on the left, leaf labels aligned in a single
// column after the tree.
//
// Each depth level occupies two columns. A node at depth d sits in column
// 2d (its node column); column 2d+1 is its connector column, holding the
// vertical spine toward its children and the junction glyphs on the
// children's rows. Labels start at column 2*maxDepth+2.
//
// Rendering never fails: given a parsed tree it always produces a complete
// diagram. Callers wanting narrower output should collapse unary chains
// with [tree.Collapse] first.
package box

import (
	"strings"

	"github.com/lwoodhull/cladogram/pkg/tree"
)

// Option configures rendering.
type Option func(*options)

type options struct {
	glyphs Glyphs
}

// WithGlyphs selects the glyph set, e.g. [ASCII] for terminals without
// box-drawing characters. The default is [Unicode].
func WithGlyphs(g Glyphs) Option {
	return func(o *options) { o.glyphs = g }
}

// Render lays the tree out and paints it. The result is ready to print:
// rows are joined by newlines, trailing blanks are trimmed from every row,
// and a non-empty diagram ends with exactly one newline. A nil tree, or one
// whose only leaf is unnamed and unconnected, renders as the empty string.
func Render(root *tree.Node, opts ...Option) string {
	o := options{glyphs: Unicode}
	for _, opt := range opts {
		opt(&o)
	}
	if root == nil {
		return ""
	}

	info, leaves := Layout(root)
	if len(leaves) == 0 {
		return ""
	}

	maxDepth := 0
	for _, ni := range info {
		if ni.Depth > maxDepth {
			maxDepth = ni.Depth
		}
	}
	labelCol := maxDepth*2 + 2

	g := newGrid(len(leaves), labelCol, o.glyphs)
	drawConnectors(g, root, info)
	extendLeafRows(g, leaves, labelCol)

	return assemble(g, leaves)
}

// drawConnectors paints the spine and child junctions of every internal
// node, recursing in the same nested pattern the layout used.
func drawConnectors(g *grid, n *tree.Node, info map[*tree.Node]NodeInfo) {
	if n.IsLeaf() {
		return
	}

	xConn := info[n].Depth*2 + 1
	yTop := info[n.Children[0]].Row
	yBottom := yTop
	for _, c := range n.Children[1:] {
		y := info[c].Row
		if y < yTop {
			yTop = y
		}
		if y > yBottom {
			yBottom = y
		}
	}

	// Spine between the outermost children only; the endpoints get
	// corner glyphs below.
	for y := yTop + 1; y < yBottom; y++ {
		g.put(y, xConn, g.glyphs.Vertical)
	}

	for _, c := range n.Children {
		y := info[c].Row
		var junction rune
		switch {
		case y == yTop && yTop != yBottom:
			junction = g.glyphs.CornerTop
		case y == yBottom && yTop != yBottom:
			junction = g.glyphs.CornerBottom
		default:
			junction = g.glyphs.Tee
		}
		g.put(y, xConn, junction)

		xChild := info[c].Depth * 2
		for x := xConn + 1; x <= xChild; x++ {
			g.put(y, x, g.glyphs.Horizontal)
		}

		drawConnectors(g, c, info)
	}
}

// extendLeafRows pads every leaf's row with horizontal strokes from its last
// glyph up to the label column, so each label attaches to a contiguous line.
// Must run after all connector drawing and before labels are placed.
//
// A row with no glyphs and no label stays blank; a lone unnamed leaf would
// otherwise render a stroke attached to nothing.
func extendLeafRows(g *grid, leaves []Leaf, labelCol int) {
	for _, lf := range leaves {
		last := g.lastInk(lf.Row)
		if last == -1 && lf.Label == "" {
			continue
		}
		for x := last + 1; x < labelCol; x++ {
			g.put(lf.Row, x, g.glyphs.Horizontal)
		}
	}
}

// assemble attaches labels and joins rows into the final text block.
func assemble(g *grid, leaves []Leaf) string {
	labels := make(map[int]string, len(leaves))
	for _, lf := range leaves {
		labels[lf.Row] = lf.Label
	}

	lines := make([]string, len(g.cells))
	for y, row := range g.cells {
		lines[y] = strings.TrimRight(string(row)+labels[y], " ")
	}

	out := strings.Join(lines, "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}
