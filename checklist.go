package tickgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	// EmptyReport is written instead of any sections when the graph has no roots.
	EmptyReport = "Nothing. Eek!"
	// MultipleParentsWarning marks tasks reachable from more than one parent.
	MultipleParentsWarning = "⚠️ "
)

// Checkbox returns the checklist marker for a task state.
func Checkbox(state State) string {
	switch state {
	case StateCompleted:
		return "[x]"
	case StateWontDo:
		return "[nope]"
	}
	return "[ ]"
}

// WriteChecklist writes a Markdown checklist of every root task, grouped by priority.
func (db *TaskDb) WriteChecklist(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", db.Title)

	roots := db.Graph.Roots()
	if len(roots) == 0 {
		fmt.Fprintf(bw, "\n%s\n", EmptyReport)
		return bw.Flush()
	}

	byPriority := make(map[Priority][]NodeID)
	for _, id := range roots {
		priority := db.Graph.Node(id).PriorityOrNone()
		byPriority[priority] = append(byPriority[priority], id)
	}

	for _, priority := range Priorities {
		group := byPriority[priority]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(bw, "\n## %s\n\n", priority)
		for _, id := range group {
			db.writeChecklistItem(bw, id, 0, map[NodeID]bool{})
		}
	}
	return bw.Flush()
}

// writeChecklistItem writes a task and, below it, everything it is a parent of.
// Nodes already on the current path are skipped so self references terminate.
func (db *TaskDb) writeChecklistItem(w io.Writer, id NodeID, depth int, onPath map[NodeID]bool) {
	task := db.Graph.Node(id)

	warning := ""
	if db.Graph.InDegree(id) > 1 {
		warning = MultipleParentsWarning
	}
	fmt.Fprintf(w, "%s- %s%s %s\n", strings.Repeat("  ", depth), warning, Checkbox(task.StateOrUndone()), task.Name)

	onPath[id] = true
	for _, child := range db.Graph.outgoing[id] {
		if onPath[child] {
			continue
		}
		db.writeChecklistItem(w, child, depth+1, onPath)
	}
	delete(onPath, id)
}
