package graph

import (
	"fmt"
	"strings"

	"github.com/rtakeda/flowdoc/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from a flow graph.
// The output is deterministic: node declarations come first, in the graph's
// insertion order, followed by edge declarations in their given order.
// Mermaid requires nodes to be introduced before they are referenced, hence
// the two passes.
//
// Rendering is total: unknown edge endpoints, self-loops and duplicate edges
// are emitted as-is. An empty graph yields just the header.
func GenerateMermaid(g *domain.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph TD;\n")

	for _, node := range g.Nodes() {
		// Stadium shape; reserved identifiers get their display labels.
		sb.WriteString(fmt.Sprintf("    %s([%s]);\n", node.ID, domain.Label(node.ID)))
	}

	for _, edge := range g.Edges() {
		if edge.Conditional {
			sb.WriteString(fmt.Sprintf("    %s -.->|conditional| %s;\n", edge.Source, edge.Target))
		} else {
			sb.WriteString(fmt.Sprintf("    %s --> %s;\n", edge.Source, edge.Target))
		}
	}

	return sb.String()
}
