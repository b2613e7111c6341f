package compiler

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/rtakeda/flowdoc/internal/dto"
	"github.com/rtakeda/flowdoc/pkg/domain"
)

// Parser is responsible for converting raw flow-file bytes into a Graph.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a YAML flow definition and compiles it into a domain.Graph.
//
// The reserved entry and exit nodes are implicit: when an edge references
// __start__ or __end__ without a matching declaration, the node is added
// automatically (entry first, exit last), matching how orchestrators expose
// their compiled graphs. An absent edges list is equivalent to an empty one.
func (p *Parser) Parse(data []byte) (*domain.Graph, error) {
	// Decode to a generic map first, then map onto the DTO. This keeps the
	// DTO tags in one place regardless of the source format.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse flow definition: %w", err)
	}

	var def dto.FlowDefinition
	if err := mapstructure.Decode(raw, &def); err != nil {
		return nil, fmt.Errorf("failed to decode flow definition: %w", err)
	}

	return Compile(def)
}

// Compile turns a flow definition DTO into a domain.Graph, preserving
// declaration order for nodes and edges.
func Compile(def dto.FlowDefinition) (*domain.Graph, error) {
	g := domain.NewGraph()

	declared := make(map[string]bool, len(def.Nodes))
	for _, n := range def.Nodes {
		declared[n.ID] = true
	}

	if referencesNode(def.Edges, domain.StartID) && !declared[domain.StartID] {
		if err := g.AddNode(domain.Node{ID: domain.StartID}); err != nil {
			return nil, err
		}
	}

	for _, n := range def.Nodes {
		if err := g.AddNode(domain.Node{ID: n.ID, Metadata: n.Metadata}); err != nil {
			return nil, fmt.Errorf("invalid flow definition: %w", err)
		}
	}

	if referencesNode(def.Edges, domain.EndID) && !declared[domain.EndID] {
		if err := g.AddNode(domain.Node{ID: domain.EndID}); err != nil {
			return nil, err
		}
	}

	for _, e := range def.Edges {
		src, dst := e.SourceID(), e.TargetID()
		if src == "" || dst == "" {
			return nil, fmt.Errorf("edge missing source or target (source=%q, target=%q)", src, dst)
		}
		g.AddEdge(domain.Edge{Source: src, Target: dst, Conditional: e.Conditional})
	}

	return g, nil
}

func referencesNode(edges []dto.FlowEdge, id string) bool {
	for _, e := range edges {
		if e.SourceID() == id || e.TargetID() == id {
			return true
		}
	}
	return false
}
