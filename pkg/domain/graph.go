package domain

import "fmt"

// Node represents a single step in the flow graph.
// Only the identity matters for rendering; Metadata carries extensible
// key-value pairs that downstream presenters are free to ignore.
type Node struct {
	ID       string            `json:"id" yaml:"id"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Edge represents a directed connection between two nodes.
// A Conditional edge is only taken under a runtime condition and is
// rendered with a distinct visual style.
type Edge struct {
	Source      string `json:"source" yaml:"source"`
	Target      string `json:"target" yaml:"target"`
	Conditional bool   `json:"conditional,omitempty" yaml:"conditional,omitempty"`
}

// Graph is an order-preserving directed graph description.
// Node iteration follows insertion order and edges keep the order they
// were added in; both orders are observable contracts for rendering.
//
// Graph does not validate edge endpoints. An edge may reference a node
// that was never added; presenters render it regardless.
type Graph struct {
	order []string
	nodes map[string]Node
	edges []Edge
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]Node),
	}
}

// AddNode registers a node. Re-adding an existing ID is an error so that
// insertion order stays unambiguous.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return fmt.Errorf("node missing ID")
	}
	if _, ok := g.nodes[n.ID]; ok {
		return fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNode)
	}
	g.order = append(g.order, n.ID)
	g.nodes[n.ID] = n
	return nil
}

// AddEdge appends an edge to the ordered edge list.
func (g *Graph) AddEdge(e Edge) {
	g.edges = append(g.edges, e)
}

// Node returns the node with the given ID, if present.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges in the order they were added.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}
