package dsl

import "github.com/rtakeda/flowdoc/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node and its
// outgoing connections.
type NodeBuilder struct {
	node    domain.Node
	builder *Builder
}

// Meta adds a metadata key-value pair to the node.
func (n *NodeBuilder) Meta(key, value string) *NodeBuilder {
	if n.node.Metadata == nil {
		n.node.Metadata = make(map[string]string)
	}
	n.node.Metadata[key] = value
	return n
}

// Entry connects the reserved start node to this node.
func (n *NodeBuilder) Entry() *NodeBuilder {
	n.builder.connect(domain.StartID, n.node.ID, false)
	return n
}

// Go adds an unconditional edge to the target node.
func (n *NodeBuilder) Go(target string) *NodeBuilder {
	n.builder.connect(n.node.ID, target, false)
	return n
}

// GoIf adds a conditional edge to the target node.
func (n *NodeBuilder) GoIf(target string) *NodeBuilder {
	n.builder.connect(n.node.ID, target, true)
	return n
}

// Terminal connects this node to the reserved end node.
func (n *NodeBuilder) Terminal() *NodeBuilder {
	n.builder.connect(n.node.ID, domain.EndID, false)
	return n
}

// Build returns the underlying domain.Node.
// This is primarily used by the Builder, but exposed for advanced usage.
func (n *NodeBuilder) Build() domain.Node {
	return n.node
}
