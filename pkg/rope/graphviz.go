package rope

import (
	"fmt"
	"strings"
)

// ToGraphviz emits a DOT description of the tree: leaves are labeled
// with their cached counts, branches with height and
// counts. Each node's id (assigned at construction, see node.go) labels
// the DOT node so two renders of equal-shape, different-identity trees
// stay visually distinguishable without printing a pointer address.
func (r *Rope) ToGraphviz() string {
	var b strings.Builder
	b.WriteString("digraph rope {\n")
	b.WriteString("\tnode [shape=box, fontname=monospace];\n")
	writeGraphvizNode(&b, r.root)
	b.WriteString("}\n")
	return b.String()
}

func writeGraphvizNode(b *strings.Builder, n *node) {
	if n.isLeaf() {
		fmt.Fprintf(b, "\tn%s [label=%q];\n", n.id,
			fmt.Sprintf("leaf\\nchars=%d graphemes=%d lines=%d", n.chars, n.graphemes, n.lineEnds))
		return
	}
	fmt.Fprintf(b, "\tn%s [label=%q];\n", n.id,
		fmt.Sprintf("branch\\nheight=%d chars=%d graphemes=%d lines=%d", n.height, n.chars, n.graphemes, n.lineEnds))
	fmt.Fprintf(b, "\tn%s -> n%s;\n", n.id, n.left.id)
	fmt.Fprintf(b, "\tn%s -> n%s;\n", n.id, n.right.id)
	writeGraphvizNode(b, n.left)
	writeGraphvizNode(b, n.right)
}
