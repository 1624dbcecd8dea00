package wavl

import (
	"fmt"
	"io"
	"strings"
)

// nodeids hands out stable Graphviz IDs for tree nodes.
type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with key, rank and size, edges
// with the rank difference. External children are drawn as small dots.
func Tree2Dot[K, V any](tree *Tree[K, V], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[K, V]()
	external := 0
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		id := ids.alloc(n)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%v\\nr=%d s=%d\" %s];\n", id, n.key, n.rank, n.size,
			nodeDotStyles(n))
		for _, c := range []*node[K, V]{n.left, n.right} {
			d := n.rank - c.getRank()
			if c == nil {
				external++
				nilid := -external
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode)
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=%d];\n", id, nilid, d)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=%d];\n", id, ids.alloc(c), d)
			walk(c)
		}
	}
	if !tree.IsEmpty() {
		walk(tree.root)
	}
	_, err := fmt.Fprintf(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n%s%s}\n",
		nodelist.String(), edgelist.String())
	if err != nil {
		tracer().Errorf("wavl DOT: %s", err.Error())
	}
	return err
}

const emptyNode = "[label=\"\",color=black,shape=point]"

func nodeDotStyles[K, V any](n *node[K, V]) string {
	s := ",style=filled,shape=circle"
	if n.leftDiff() == 2 && n.rightDiff() == 2 {
		return s + ",fillcolor=\"#FFBB88\""
	}
	return s + ",fillcolor=\"#a3d7e4\""
}
