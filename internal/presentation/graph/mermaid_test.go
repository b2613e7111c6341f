package graph_test

import (
	"strings"
	"testing"

	"github.com/rtakeda/flowdoc/internal/presentation/graph"
	"github.com/rtakeda/flowdoc/pkg/domain"
)

func build(t *testing.T, ids []string, edges []domain.Edge) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	for _, id := range ids {
		if err := g.AddNode(domain.Node{ID: id}); err != nil {
			t.Fatalf("AddNode(%q) failed: %v", id, err)
		}
	}
	for _, e := range edges {
		g.AddEdge(e)
	}
	return g
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		edges []domain.Edge
		want  string
	}{
		{
			name: "Simple Flow",
			ids:  []string{domain.StartID, "A", domain.EndID},
			edges: []domain.Edge{
				{Source: domain.StartID, Target: "A"},
				{Source: "A", Target: domain.EndID, Conditional: true},
			},
			want: "graph TD;\n" +
				"    __start__([Start]);\n" +
				"    A([A]);\n" +
				"    __end__([End]);\n" +
				"    __start__ --> A;\n" +
				"    A -.->|conditional| __end__;\n",
		},
		{
			name: "Empty Graph",
			want: "graph TD;\n",
		},
		{
			name: "Self Loop",
			ids:  []string{"retry"},
			edges: []domain.Edge{
				{Source: "retry", Target: "retry"},
			},
			want: "graph TD;\n" +
				"    retry([retry]);\n" +
				"    retry --> retry;\n",
		},
		{
			name: "Duplicate Edges",
			ids:  []string{"a", "b"},
			edges: []domain.Edge{
				{Source: "a", Target: "b"},
				{Source: "a", Target: "b"},
			},
			want: "graph TD;\n" +
				"    a([a]);\n" +
				"    b([b]);\n" +
				"    a --> b;\n" +
				"    a --> b;\n",
		},
		{
			name: "Dangling Edge Endpoint",
			ids:  []string{"a"},
			edges: []domain.Edge{
				{Source: "a", Target: "ghost"},
			},
			want: "graph TD;\n" +
				"    a([a]);\n" +
				"    a --> ghost;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(build(t, tt.ids, tt.edges))
			if got != tt.want {
				t.Errorf("GenerateMermaid() =\n%v\nWant:\n%v", got, tt.want)
			}
		})
	}
}

func TestGenerateMermaid_NodesBeforeEdges(t *testing.T) {
	g := build(t,
		[]string{"a", "b"},
		[]domain.Edge{{Source: "a", Target: "b"}},
	)
	out := graph.GenerateMermaid(g)

	lastDecl := strings.LastIndex(out, "([")
	firstEdge := strings.Index(out, "-->")
	if lastDecl == -1 || firstEdge == -1 {
		t.Fatalf("Output missing declarations or edges:\n%s", out)
	}
	if lastDecl > firstEdge {
		t.Errorf("Node declarations must precede edge declarations:\n%s", out)
	}
}
