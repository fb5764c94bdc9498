package tickgraph

import (
	"fmt"
	"strings"
)

const (
	indentUnit   = "    "
	bulletMarker = "- "
	parentMarker = " /"
)

// TaskEntry is one parsed task line together with the lines nested under it.
type TaskEntry struct {
	Name       string
	NameSpan   Span
	Priority   *Priority // top-level entries only
	State      *State    // top-level entries only
	ParentName *string
	ParentSpan Span
	Children   []TaskEntry
}

// Task returns the graph node for this entry.
func (e TaskEntry) Task() Task {
	return Task{Name: e.Name, Priority: e.Priority, State: e.State}
}

// taskLine matches a single task line at the given depth.
// The cursor is left untouched when the line does not match.
func (s *scanner) taskLine(depth int) (TaskEntry, bool) {
	mark := s.pos
	if !s.literal(strings.Repeat(indentUnit, depth)) || !s.literal(bulletMarker) {
		s.pos = mark
		return TaskEntry{}, false
	}

	var entry TaskEntry
	entry.Name, entry.NameSpan = s.until(parentMarker)
	if strings.HasPrefix(s.rest(), parentMarker) {
		s.pos += len(parentMarker)
		s.inlineWhitespace()
		parent, span := s.until("")
		entry.ParentName, entry.ParentSpan = &parent, span
	}

	if !s.newline() {
		s.pos = mark
		return TaskEntry{}, false
	}
	s.filler()
	return entry, true
}

// entries parses the task lines of one status subsection into a forest.
// Children are collected on an explicit stack of open sibling lists whose
// height always equals the depth currently being matched.
func (s *scanner) entries(priority Priority, state State) []TaskEntry {
	stack := [][]TaskEntry{nil}
	depth := 1
	for {
		if entry, ok := s.taskLine(depth); ok {
			if depth == 1 {
				p, st := priority, state
				entry.Priority, entry.State = &p, &st
			}
			stack[len(stack)-1] = append(stack[len(stack)-1], entry)
			stack = append(stack, nil)
			depth++
			continue
		}

		done := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		depth--
		if len(stack) > 0 {
			siblings := stack[len(stack)-1]
			siblings[len(siblings)-1].Children = done
			continue
		}
		if depth != 0 {
			panic(fmt.Sprintf("tickgraph: indentation stack emptied at depth %d", depth))
		}
		return done
	}
}
