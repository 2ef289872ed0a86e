package btree

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// nodeIDs assigns stable small integer ids to nodes for the lifetime of one
// dump, mirroring the teacher's id-table trick for keeping DOT output
// deterministic and readable across repeated dumps of overlapping
// structure.
type nodeIDs[V any] struct {
	table map[*node[V]]int
	next  int
}

func newNodeIDs[V any]() *nodeIDs[V] {
	return &nodeIDs[V]{table: make(map[*node[V]]int), next: 1}
}

func (ids *nodeIDs[V]) id(n *node[V]) int {
	if id, ok := ids.table[n]; ok {
		return id
	}
	id := ids.next
	ids.table[n] = id
	ids.next++
	return id
}

// DumpDOT writes the tree's structure in Graphviz DOT format, one box per
// node labeled with its values. Grounded on the teacher's Cord2Dot.
func (t *Tree[K, V]) DumpDOT(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newNodeIDs[V]()
	if t.root == nil {
		io.WriteString(w, "\t\"empty\" [label=\"(empty)\"];\n")
		io.WriteString(w, "}\n")
		return
	}
	var nodelist, edgelist string
	var walk func(n *node[V])
	walk = func(n *node[V]) {
		id := ids.id(n)
		label := dotLabel(n)
		style := dotStyle(n.leaf)
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\" %s];\n", id, label, style)
		for _, c := range n.children {
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", id, ids.id(c))
			walk(c)
		}
	}
	walk(t.root)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotLabel[V any](n *node[V]) string {
	s := fmt.Sprintf("%v", n.values)
	return s
}

func dotStyle(leaf bool) string {
	if leaf {
		return ",style=filled,shape=box,fillcolor=\"#a3d7e4\""
	}
	return ",style=filled,shape=ellipse,color=black,fillcolor=\"#d7e4a3\""
}

// Dump writes a colorized, indented rendering of the tree to w, one line
// per node: internal nodes in bold green, leaves in blue, indented
// by depth. Useful from a debugger or a failing test. Colors are enabled
// only when w is an interactive terminal, following the teacher's
// ConfigFromTerminal heuristic.
func (t *Tree[K, V]) Dump(w io.Writer) {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = term.IsTerminal(int(f.Fd()))
	}
	internal := color.New(color.FgGreen, color.Bold)
	leaf := color.New(color.FgBlue)
	if !useColor {
		internal.DisableColor()
		leaf.DisableColor()
	}
	if t.root == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}
	var walk func(n *node[V], depth int)
	walk = func(n *node[V], depth int) {
		indent := ""
		for i := 0; i < depth; i++ {
			indent += "  "
		}
		if n.leaf {
			leaf.Fprintf(w, "%sleaf  %v\n", indent, n.values)
			return
		}
		internal.Fprintf(w, "%snode  %v\n", indent, n.values)
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(t.root, 0)
}
