// Package domain defines the core flow graph types shared across flowdoc.
//
// The graph is a plain description of an orchestration flow: an
// order-preserving set of nodes plus an ordered list of directed edges.
// It carries no execution semantics; presenters (Mermaid rendering) and
// sources (DSL builder, YAML compiler) both speak in these types.
package domain
