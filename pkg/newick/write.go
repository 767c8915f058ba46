package newick

import (
	"strconv"
	"strings"

	"github.com/lwoodhull/cladogram/pkg/tree"
)

// Write renders the tree as a single Newick statement, including branch
// lengths where present. Labels that contain reserved characters are quoted.
// The output always ends with ';' and can be read back with [Parse].
func Write(root *tree.Node) string {
	var b strings.Builder
	writeNode(&b, root)
	b.WriteByte(';')
	return b.String()
}

func writeNode(b *strings.Builder, n *tree.Node) {
	if len(n.Children) > 0 {
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNode(b, c)
		}
		b.WriteByte(')')
	}
	if n.Name != nil {
		b.WriteString(quoteLabel(*n.Name))
	}
	if n.Length != nil {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(*n.Length, 'g', -1, 64))
	}
}

func quoteLabel(label string) string {
	if label != "" && !strings.ContainsAny(label, unquotedBanned) {
		return label
	}
	return "'" + strings.ReplaceAll(label, "'", "''") + "'"
}
