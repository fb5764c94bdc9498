package tickgraph

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDot(t *testing.T) {
	db, err := Parse(summary(
		"# T",
		"## High",
		"###     Completed",
		"    - A",
		"        - B / Z",
	))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, db.WriteDot(&buf))

	expected := `digraph {
    0 [ label = "Task{Name: \"A\", Priority: High, State: Completed}" ]
    1 [ label = "Task{Name: \"B\", Priority: nil, State: nil}" ]
    2 [ label = "Task{Name: \"Z\", Priority: nil, State: nil}" ]
    2 -> 1 [ ]
    0 -> 1 [ ]
}
`
	assert.Equal(t, expected, buf.String())
}

func TestWriteDotEscapesLabels(t *testing.T) {
	db := NewTaskDb("T")
	db.AddEntry(topEntry(`say "hi" \o/`, PriorityLow, StateWontDo))

	var buf bytes.Buffer
	require.NoError(t, db.WriteDot(&buf))

	assert.Contains(t, buf.String(), `0 [ label = "Task{Name: \"say \\\"hi\\\" \\\\o/\", Priority: Low, State: WontDo}" ]`)
}

func TestWriteDotEmptyGraph(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTaskDb("T").WriteDot(&buf))
	assert.Equal(t, "digraph {\n}\n", buf.String())
}
