// Package tickgraph turns TickTick summary exports into task graphs and reports.
//
// A summary lists tasks under fixed priority sections and status subsections.
// Nesting is expressed with four-space indentation and a task may name another
// task as its parent with a trailing " / <name>". Parse builds a TaskDb from
// such a document; the TaskDb renders as Graphviz or as a Markdown checklist.
package tickgraph

import (
	"bytes"
	"fmt"
	"io"
)

// Convert parses input and writes the report in the given format to w.
// Nothing is written unless parsing and rendering both succeed.
func Convert(input string, format Format, w io.Writer, opts ...Option) error {
	db, err := Parse(input, opts...)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := db.Render(format, &buf); err != nil {
		return fmt.Errorf("failed to render %s report: %w", format, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
