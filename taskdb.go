package tickgraph

import (
	"io"
	"log"
)

// TaskDb is the result of a successful parse: the summary title and its task graph.
type TaskDb struct {
	Title string
	Graph *TaskGraph

	logger *log.Logger
}

// Option configures a TaskDb.
type Option func(*TaskDb)

// WithLogger sends debug output about graph construction to logger.
func WithLogger(logger *log.Logger) Option {
	return func(db *TaskDb) {
		if logger != nil {
			db.logger = logger
		}
	}
}

func NewTaskDb(title string, opts ...Option) *TaskDb {
	db := &TaskDb{
		Title:  title,
		Graph:  NewTaskGraph(),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// AddEntry adds entry and its subtree to the graph and returns the entry's node.
//
// Parent references are resolved against nodes that already exist, including
// the entry's own node. A name nobody carries yet gets a fresh placeholder, so
// a reference to a task listed further down never links to it. A name
// carried by several nodes links from all of them.
func (db *TaskDb) AddEntry(entry TaskEntry) NodeID {
	id := db.Graph.AddNode(entry.Task())

	if entry.ParentName != nil {
		name := *entry.ParentName
		parents := db.Graph.NodesNamed(name)
		switch len(parents) {
		case 0:
			placeholder := db.Graph.AddNode(Task{Name: name})
			db.logger.Printf("no task named %q for %q (span %s), added placeholder node %d", name, entry.Name, entry.ParentSpan, placeholder)
			parents = []NodeID{placeholder}
		case 1:
		default:
			db.logger.Printf("parent name %q for %q (span %s) matches %d tasks", name, entry.Name, entry.ParentSpan, len(parents))
		}
		for _, parent := range parents {
			db.Graph.AddEdge(parent, id)
		}
	}

	for _, child := range entry.Children {
		childID := db.AddEntry(child)
		db.Graph.AddEdge(id, childID)
	}

	return id
}

func (db *TaskDb) logSummary() {
	db.logger.Printf("built graph for %q: %d nodes, %d edges, %d roots",
		db.Title, db.Graph.Len(), len(db.Graph.edges), len(db.Graph.Roots()))
}
