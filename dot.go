package tickgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// WriteDot writes the task graph as a Graphviz digraph with unlabeled edges.
func (db *TaskDb) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph {")
	for id, task := range db.Graph.nodes {
		fmt.Fprintf(bw, "    %d [ label = \"%s\" ]\n", id, dotEscaper.Replace(task.GoString()))
	}
	for _, edge := range db.Graph.edges {
		fmt.Fprintf(bw, "    %d -> %d [ ]\n", edge.From, edge.To)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
