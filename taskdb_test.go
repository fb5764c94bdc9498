package tickgraph

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEntryResolvesSingleParent(t *testing.T) {
	db := NewTaskDb("T")
	x := db.AddEntry(topEntry("X", PriorityHigh, StateUndone))
	y := db.AddEntry(withParent(topEntry("Y", PriorityHigh, StateUndone), "X"))

	assert.Equal(t, 2, db.Graph.Len())
	assert.Equal(t, 1, db.Graph.InDegree(y))
	assert.Equal(t, []NodeID{y}, db.Graph.Outgoing(x))
}

func TestAddEntryLinksEveryNameMatch(t *testing.T) {
	db := NewTaskDb("T")
	x1 := db.AddEntry(topEntry("X", PriorityHigh, StateCompleted))
	x2 := db.AddEntry(topEntry("X", PriorityLow, StateUndone))
	y := db.AddEntry(withParent(topEntry("Y", PriorityNone, StateUndone), "X"))

	assert.Equal(t, 3, db.Graph.Len(), "same-named entries are never merged")
	assert.Equal(t, 2, db.Graph.InDegree(y))
	assert.Equal(t, []Edge{{x1, y}, {x2, y}}, db.Graph.Edges())
}

func TestAddEntryCreatesPlaceholderForUnknownParent(t *testing.T) {
	db := NewTaskDb("T")
	y := db.AddEntry(withParent(topEntry("Y", PriorityHigh, StateUndone), "Z"))

	require.Equal(t, 2, db.Graph.Len())
	z := NodeID(1)
	placeholder := db.Graph.Node(z)
	assert.Equal(t, "Z", placeholder.Name)
	assert.Nil(t, placeholder.Priority)
	assert.Nil(t, placeholder.State)
	assert.True(t, placeholder.IsPlaceholder())
	assert.Equal(t, []NodeID{y}, db.Graph.Outgoing(z))
	assert.Equal(t, 0, db.Graph.InDegree(z))
}

func TestAddEntryForwardReferenceGetsPlaceholder(t *testing.T) {
	db := NewTaskDb("T")
	y := db.AddEntry(withParent(topEntry("Y", PriorityHigh, StateUndone), "X"))
	x := db.AddEntry(topEntry("X", PriorityHigh, StateUndone))

	assert.Equal(t, 3, db.Graph.Len())
	assert.Equal(t, []NodeID{1, x}, db.Graph.NodesNamed("X"))
	assert.Equal(t, []Edge{{1, y}}, db.Graph.Edges())
	assert.Empty(t, db.Graph.Outgoing(x), "the later real task is not linked")
}

func TestAddEntryStructuralEdges(t *testing.T) {
	db := NewTaskDb("T")
	a := db.AddEntry(topEntry("A", PriorityHigh, StateUndone,
		withParent(entry("B"), "C"),
		entry("D", entry("E")),
	))

	// A=0, B=1, C=2 (placeholder), D=3, E=4
	assert.Equal(t, 5, db.Graph.Len())
	assert.Equal(t, []Edge{{2, 1}, {0, 1}, {3, 4}, {0, 3}}, db.Graph.Edges())
	assert.Equal(t, []NodeID{1, 3}, db.Graph.Outgoing(a))
	assert.Equal(t, 2, db.Graph.InDegree(1))
	assert.Nil(t, db.Graph.Node(1).Priority, "nested entries carry no priority")
}

func TestAddEntrySelfReference(t *testing.T) {
	db := NewTaskDb("T")
	x := db.AddEntry(withParent(topEntry("X", PriorityHigh, StateUndone), "X"))

	assert.Equal(t, 1, db.Graph.Len())
	assert.Equal(t, []Edge{{x, x}}, db.Graph.Edges())
}

func TestAddEntryLogsAmbiguity(t *testing.T) {
	var buf bytes.Buffer
	db := NewTaskDb("T", WithLogger(log.New(&buf, "", 0)))
	db.AddEntry(topEntry("X", PriorityHigh, StateUndone))
	db.AddEntry(topEntry("X", PriorityHigh, StateUndone))
	db.AddEntry(withParent(topEntry("Y", PriorityHigh, StateUndone), "X"))
	db.AddEntry(withParent(topEntry("W", PriorityHigh, StateUndone), "Nobody"))

	assert.Contains(t, buf.String(), `parent name "X" for "Y"`)
	assert.Contains(t, buf.String(), `matches 2 tasks`)
	assert.Contains(t, buf.String(), `no task named "Nobody" for "W"`)
}

func TestWithLoggerIgnoresNil(t *testing.T) {
	db := NewTaskDb("T", WithLogger(nil))
	assert.NotPanics(t, func() {
		db.AddEntry(withParent(topEntry("Y", PriorityHigh, StateUndone), "Z"))
	})
}
