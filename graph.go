package tickgraph

// NodeID addresses a node in a TaskGraph. IDs are assigned in creation order starting at 0.
type NodeID int

// Edge means From is a parent of To.
type Edge struct {
	From NodeID
	To   NodeID
}

// TaskGraph is a directed graph of tasks stored as an arena.
// It is neither required to be acyclic nor to be a tree.
type TaskGraph struct {
	nodes    []Task
	edges    []Edge
	outgoing [][]NodeID
	inDegree []int
	byName   map[string][]NodeID
}

func NewTaskGraph() *TaskGraph {
	return &TaskGraph{byName: make(map[string][]NodeID)}
}

// AddNode appends a node. Nodes sharing a name are kept distinct.
func (g *TaskGraph) AddNode(task Task) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, task)
	g.outgoing = append(g.outgoing, nil)
	g.inDegree = append(g.inDegree, 0)
	g.byName[task.Name] = append(g.byName[task.Name], id)
	return id
}

// AddEdge appends an edge from parent to child.
func (g *TaskGraph) AddEdge(from, to NodeID) {
	g.edges = append(g.edges, Edge{From: from, To: to})
	g.outgoing[from] = append(g.outgoing[from], to)
	g.inDegree[to]++
}

// Len returns the number of nodes.
func (g *TaskGraph) Len() int {
	return len(g.nodes)
}

func (g *TaskGraph) Node(id NodeID) Task {
	return g.nodes[id]
}

// Edges returns every edge in insertion order.
func (g *TaskGraph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Outgoing returns the children of id in edge insertion order.
func (g *TaskGraph) Outgoing(id NodeID) []NodeID {
	return append([]NodeID(nil), g.outgoing[id]...)
}

func (g *TaskGraph) InDegree(id NodeID) int {
	return g.inDegree[id]
}

// Roots returns the nodes without parents in creation order.
func (g *TaskGraph) Roots() []NodeID {
	var roots []NodeID
	for id := range g.nodes {
		if g.inDegree[id] == 0 {
			roots = append(roots, NodeID(id))
		}
	}
	return roots
}

// NodesNamed returns every node with the given name, first created first.
func (g *TaskGraph) NodesNamed(name string) []NodeID {
	return append([]NodeID(nil), g.byName[name]...)
}
