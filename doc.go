/*
Package flowdoc keeps Mermaid flow diagrams in markdown documents in sync
with the flow graphs they describe.

It converts a directed graph description (nodes and edges, some edges marked
conditional) into Mermaid flowchart text, then splices that text into a fixed
region of a documentation file delimited by two sentinel marker lines, leaving
the rest of the file untouched. Each run fully regenerates the diagram block,
so re-running on the tool's own output is a no-op.

# Concept

flowdoc treats the diagram region of a document as machine-owned: everything
between the start and end markers belongs to the tool, everything outside them
belongs to the author. The graph itself comes from a pluggable source — a YAML
flow definition on disk, or any orchestrator that can hand over its compiled
graph through the GraphSource port. This Hexagonal Architecture allows flowdoc
to be embedded in any interface: CLI, HTTP server, or AI agent infrastructure.

# Key Features

  - Deterministic Rendering: node and edge order in the diagram follows the
    source graph's declaration order, byte for byte.
  - Idempotent Patching: the marker-delimited span is fully replaced, never
    appended to; syncing twice equals syncing once.
  - Hexagonal Architecture: core logic is decoupled from adapters (graph
    sources, document stores, transports).
  - Fail-Safe Writes: documents are written atomically and never touched when
    markers are missing or rendering fails.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/rtakeda/flowdoc"
	)

	func main() {
		// Initialize the engine with a flow definition file.
		eng, err := flowdoc.New("./flow.yaml")
		if err != nil {
			log.Fatal(err)
		}

		// Sync the diagram block inside README.md.
		if err := eng.Sync(context.Background(), "README.md"); err != nil {
			log.Fatal(err)
		}
	}

The target document must contain the two sentinel lines:

	<!-- MERMAID_DIAGRAM_START -->
	<!-- MERMAID_DIAGRAM_END -->

Everything between them is replaced with a fenced mermaid block on each sync.

Orchestrators that already hold their graph in memory can skip the flow file
and inject a source directly, for example the DSL builder:

	b := dsl.New()
	b.Add("fetch").Entry().Go("validate")
	b.Add("validate").Terminal()

	eng, err := flowdoc.New("", flowdoc.WithSource(b))
*/
package flowdoc
