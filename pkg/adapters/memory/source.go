package memory

import (
	"fmt"

	"github.com/rtakeda/flowdoc/pkg/domain"
)

// Source implements ports.GraphSource over an in-memory graph.
// It is the simplest way to hand flowdoc a graph an orchestrator has
// already compiled, and improves DX for tests.
type Source struct {
	graph *domain.Graph
}

// New creates a Source over the given graph.
func New(g *domain.Graph) *Source {
	return &Source{graph: g}
}

// NewFromEdges builds a graph from edge triples, declaring every
// referenced node in first-seen order. The reserved entry node, when
// referenced, comes first; the reserved exit node comes last.
func NewFromEdges(edges ...domain.Edge) (*Source, error) {
	g := domain.NewGraph()

	seen := make(map[string]bool)
	var order []string
	usesStart, usesEnd := false, false
	for _, e := range edges {
		for _, id := range []string{e.Source, e.Target} {
			if id == "" {
				return nil, fmt.Errorf("edge missing endpoint: %+v", e)
			}
			switch id {
			case domain.StartID:
				usesStart = true
			case domain.EndID:
				usesEnd = true
			default:
				if !seen[id] {
					seen[id] = true
					order = append(order, id)
				}
			}
		}
	}

	if usesStart {
		order = append([]string{domain.StartID}, order...)
	}
	if usesEnd {
		order = append(order, domain.EndID)
	}
	for _, id := range order {
		if err := g.AddNode(domain.Node{ID: id}); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		g.AddEdge(e)
	}

	return &Source{graph: g}, nil
}

// Graph returns the wrapped graph.
func (s *Source) Graph() (*domain.Graph, error) {
	if s.graph == nil {
		return nil, fmt.Errorf("memory source has no graph")
	}
	return s.graph, nil
}
