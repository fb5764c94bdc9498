package tickgraph

import "strings"

// Test utilities - shared helpers for tests

// summary joins lines into a document with a trailing newline
func summary(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func strPtr(s string) *string {
	return &s
}

func priorityPtr(p Priority) *Priority {
	return &p
}

func statePtr(s State) *State {
	return &s
}

// entry builds a nested TaskEntry without priority or state
func entry(name string, children ...TaskEntry) TaskEntry {
	return TaskEntry{Name: name, Children: children}
}

// topEntry builds a top-level TaskEntry
func topEntry(name string, priority Priority, state State, children ...TaskEntry) TaskEntry {
	return TaskEntry{Name: name, Priority: &priority, State: &state, Children: children}
}

func withParent(e TaskEntry, parent string) TaskEntry {
	e.ParentName = &parent
	return e
}

// sampleSummary exercises every section shape the parser supports
var sampleSummary = summary(
	"# Summary 2024",
	"",
	"## High",
	"###     Completed",
	"    - Ship release",
	"        - Write notes",
	"###     Undone",
	"    - Fix bug / Ship release",
	"## Low",
	"###     Won't Do",
	"    - Rewrite in Rust",
	"",
	"## None",
	"###     Undone",
	"    - Inbox zero",
)
