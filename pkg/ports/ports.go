package ports

import (
	"context"

	"github.com/rtakeda/flowdoc/pkg/domain"
)

// GraphSource defines how flowdoc obtains the flow graph.
// Implementations (DSL builder, YAML compiler, embedding orchestrators)
// provide a read-only snapshot; flowdoc never mutates it.
type GraphSource interface {
	// Graph returns the current flow graph description.
	Graph() (*domain.Graph, error)
}

// DocumentStore is the byte-stream capability for reading and writing
// target documents. It decouples the sync pipeline from the filesystem.
type DocumentStore interface {
	// ReadDocument returns the full text content of the document at path.
	ReadDocument(ctx context.Context, path string) (string, error)

	// WriteDocument overwrites the document at path with text.
	// Implementations should write atomically (full content or nothing).
	WriteDocument(ctx context.Context, path string, text string) error
}

// Watchable defines an interface for graph sources that can notify about
// backend changes. This is typically used for dev-mode re-sync.
type Watchable interface {
	// Watch returns a channel that is signaled when the underlying flow
	// definition changes. It abstracts away the specific event details,
	// signaling only that a re-sync is required.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
