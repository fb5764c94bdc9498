package tickgraph

import "fmt"

// Priority is the section a top-level task was listed under.
// The zero value is High; the order High < Medium < Low < None is meaningful.
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityMedium
	PriorityLow
	PriorityNone
)

// Priorities lists every priority in report order
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow, PriorityNone}

// String returns the section identifier TickTick uses in summaries.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	case PriorityNone:
		return "None"
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// State is the completion status subsection a top-level task was listed under.
type State int

const (
	StateUndone State = iota
	StateCompleted
	StateWontDo
)

// String returns the subsection heading used in summaries.
func (s State) String() string {
	switch s {
	case StateUndone:
		return "Undone"
	case StateCompleted:
		return "Completed"
	case StateWontDo:
		return "Won't Do"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Task is a node in the task graph.
// Priority and State are only set for top-level entries; a Task with
// neither is a placeholder created for an unresolved parent reference.
type Task struct {
	Name     string
	Priority *Priority
	State    *State
}

// IsPlaceholder reports whether the task has neither priority nor state.
// Nodes created for unresolved parent names always do, and so do nested entries.
func (t Task) IsPlaceholder() bool {
	return t.Priority == nil && t.State == nil
}

// PriorityOrNone returns the task priority, treating a missing one as PriorityNone.
func (t Task) PriorityOrNone() Priority {
	if t.Priority == nil {
		return PriorityNone
	}
	return *t.Priority
}

// StateOrUndone returns the task state, treating a missing one as StateUndone.
func (t Task) StateOrUndone() State {
	if t.State == nil {
		return StateUndone
	}
	return *t.State
}

// GoString is the debug representation used for graph labels.
func (t Task) GoString() string {
	priority, state := "nil", "nil"
	if t.Priority != nil {
		priority = t.Priority.String()
	}
	if t.State != nil {
		switch *t.State {
		case StateWontDo:
			state = "WontDo"
		default:
			state = t.State.String()
		}
	}
	return fmt.Sprintf("Task{Name: %q, Priority: %s, State: %s}", t.Name, priority, state)
}
