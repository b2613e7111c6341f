/*
Package ports defines the driven ports (interfaces) for the flowdoc pipeline.

These interfaces decouple the core logic from external implementations,
allowing the sync pipeline to work with various graph sources and document
backends.

# Key Interfaces

  - GraphSource: Supplies the flow graph description (e.g., from YAML or the DSL builder).
  - DocumentStore: Reads and writes the target documents (e.g., local filesystem).
  - Watchable: Optional change notification for dev-mode re-sync.
*/
package ports
