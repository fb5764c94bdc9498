package tickgraph

import (
	"fmt"
	"io"
	"strings"
)

// Format selects the report rendered from a TaskDb.
type Format string

const (
	FormatGraphviz Format = "graphviz"
	FormatMarkdown Format = "markdown"
)

// Formats lists every supported report format.
var Formats = []Format{FormatGraphviz, FormatMarkdown}

func (f Format) String() string {
	return string(f)
}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	candidate := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range Formats {
		if f == candidate {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (use graphviz or markdown)", name)
}

// Render writes db to w in the requested format.
func (db *TaskDb) Render(format Format, w io.Writer) error {
	switch format {
	case FormatGraphviz:
		return db.WriteDot(w)
	case FormatMarkdown:
		return db.WriteChecklist(w)
	}
	return fmt.Errorf("unknown output format %q", format)
}
