package dsl

import (
	"fmt"

	"github.com/rtakeda/flowdoc/pkg/domain"
)

// Builder manages the graph construction.
// Nodes keep the order they were added in; edges keep the order their
// connections were declared in. Both orders survive into the built graph.
type Builder struct {
	order []string
	nodes map[string]*NodeBuilder
	edges []domain.Edge

	usesStart bool
	usesEnd   bool
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new node in the graph.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node: domain.Node{
			ID: id,
		},
		builder: b,
	}
	b.order = append(b.order, id)
	b.nodes[id] = nb
	return nb
}

// connect records an edge at declaration time so the final edge order
// matches the order calls were made in.
func (b *Builder) connect(source, target string, conditional bool) {
	if source == domain.StartID || target == domain.StartID {
		b.usesStart = true
	}
	if source == domain.EndID || target == domain.EndID {
		b.usesEnd = true
	}
	b.edges = append(b.edges, domain.Edge{
		Source:      source,
		Target:      target,
		Conditional: conditional,
	})
}

// Build compiles the declarations into a domain.Graph.
// The reserved entry node comes first and the exit node last, when used.
func (b *Builder) Build() (*domain.Graph, error) {
	g := domain.NewGraph()

	if b.usesStart && b.nodes[domain.StartID] == nil {
		if err := g.AddNode(domain.Node{ID: domain.StartID}); err != nil {
			return nil, err
		}
	}
	for _, id := range b.order {
		if err := g.AddNode(b.nodes[id].node); err != nil {
			return nil, fmt.Errorf("failed to build graph: %w", err)
		}
	}
	if b.usesEnd && b.nodes[domain.EndID] == nil {
		if err := g.AddNode(domain.Node{ID: domain.EndID}); err != nil {
			return nil, err
		}
	}

	for _, e := range b.edges {
		g.AddEdge(e)
	}

	return g, nil
}

// Graph implements ports.GraphSource, so a Builder can feed the sync
// pipeline directly.
func (b *Builder) Graph() (*domain.Graph, error) {
	return b.Build()
}
