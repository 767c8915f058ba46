// Package dot exports trees as Graphviz node-link diagrams, as an
// alternative to the terminal box rendering. SVG and PNG output use
// [github.com/goccy/go-graphviz] in process; no graphviz installation is
// required.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/lwoodhull/cladogram/pkg/tree"
)

// ToDOT converts a tree to Graphviz DOT. Leaves render as boxes with their
// labels, named internal nodes as ellipses, unnamed internal nodes as
// points. The graph flows left to right, matching the terminal rendering.
func ToDOT(root *tree.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [fontsize=12];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	ids := make(map[*tree.Node]string, root.Count())
	next := 0
	root.Walk(func(n *tree.Node) bool {
		ids[n] = fmt.Sprintf("n%d", next)
		next++
		fmt.Fprintf(&buf, "  %s [%s];\n", ids[n], strings.Join(nodeAttrs(n), ", "))
		return true
	})

	buf.WriteString("\n")
	root.Walk(func(n *tree.Node) bool {
		for _, c := range n.Children {
			fmt.Fprintf(&buf, "  %s -> %s;\n", ids[n], ids[c])
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n *tree.Node) []string {
	switch {
	case n.IsLeaf():
		return []string{fmt.Sprintf("label=%q", n.Label()), "shape=box"}
	case n.Named():
		return []string{fmt.Sprintf("label=%q", n.Label()), "shape=ellipse"}
	default:
		return []string{"shape=point"}
	}
}

// RenderSVG renders a DOT graph to SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG bytes.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
