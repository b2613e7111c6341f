package flowdoc

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	fileAdapter "github.com/rtakeda/flowdoc/internal/adapters/file"
	"github.com/rtakeda/flowdoc/internal/docsync"
	"github.com/rtakeda/flowdoc/internal/logging"
	"github.com/rtakeda/flowdoc/internal/presentation/graph"
	"github.com/rtakeda/flowdoc/pkg/domain"
	"github.com/rtakeda/flowdoc/pkg/observability"
	"github.com/rtakeda/flowdoc/pkg/ports"
)

// Version is the flowdoc release version.
var Version = "0.3.0"

// Engine is the high-level entry point for the flowdoc library.
// It wires a graph source to the render-and-patch pipeline and provides
// a simplified API for consumers.
type Engine struct {
	source      ports.GraphSource
	docs        ports.DocumentStore
	syncer      *docsync.Syncer
	logger      *slog.Logger
	metrics     *observability.Metrics
	startMarker string
	endMarker   string
	Name        string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSource injects a custom GraphSource, bypassing the default
// flow-file loading. Orchestrators that already hold their own graph
// (e.g. a DSL Builder) use this.
func WithSource(s ports.GraphSource) Option {
	return func(e *Engine) {
		e.source = s
	}
}

// WithDocumentStore injects a custom document backend.
func WithDocumentStore(d ports.DocumentStore) Option {
	return func(e *Engine) {
		e.docs = d
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMarkers overrides the sentinel marker pair delimiting the diagram
// region. The defaults are docsync.StartMarker and docsync.EndMarker.
func WithMarkers(start, end string) Option {
	return func(e *Engine) {
		e.startMarker = start
		e.endMarker = end
	}
}

// WithMetrics attaches Prometheus instrumentation to the sync pipeline.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New initializes a new flowdoc Engine.
// By default, it reads the flow definition at flowPath.
// If the WithSource option is provided, flowPath can be empty and no
// file loading takes place.
func New(flowPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	// Apply options first to check if a source is provided.
	for _, opt := range opts {
		opt(eng)
	}

	if eng.source == nil {
		if flowPath == "" {
			return nil, fmt.Errorf("flowPath is required when no custom source is provided")
		}
		absPath, err := filepath.Abs(flowPath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		eng.Name = filepath.Base(absPath)
		eng.source = fileAdapter.NewFlowSource(absPath)
	} else if flowPath != "" {
		// A custom source still takes flowPath as a descriptive label.
		eng.Name = filepath.Base(flowPath)
	}

	if eng.docs == nil {
		eng.docs = fileAdapter.New()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("flow", eng.Name)
	}

	eng.syncer = docsync.NewSyncer(eng.docs)
	eng.syncer.StartMarker = eng.startMarker
	eng.syncer.EndMarker = eng.endMarker
	eng.syncer.Logger = eng.logger
	eng.syncer.Metrics = eng.metrics

	return eng, nil
}

// Inspect returns the full graph definition for visualization or
// introspection tools.
func (e *Engine) Inspect() (*domain.Graph, error) {
	return e.source.Graph()
}

// Mermaid renders the current graph as Mermaid flowchart text.
func (e *Engine) Mermaid() (string, error) {
	g, err := e.Inspect()
	if err != nil {
		return "", err
	}
	return graph.GenerateMermaid(g), nil
}

// Sync regenerates the diagram block inside the document at docPath.
// The file is left unmodified on any failure prior to the write step.
func (e *Engine) Sync(ctx context.Context, docPath string) error {
	g, err := e.Inspect()
	if err != nil {
		return err
	}
	return e.syncer.Sync(ctx, g, docPath)
}

// Check reports whether the document at docPath already contains the
// current diagram. It never writes.
func (e *Engine) Check(ctx context.Context, docPath string) (bool, error) {
	g, err := e.Inspect()
	if err != nil {
		return false, err
	}
	return e.syncer.Check(ctx, g, docPath)
}

// Watch returns a channel that signals when the underlying flow
// definition changes. Returns an error if the source does not support
// watching.
func (e *Engine) Watch(ctx context.Context) (<-chan struct{}, error) {
	if w, ok := e.source.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, fmt.Errorf("current source does not support watching")
}

// Source returns the underlying GraphSource used by the engine.
func (e *Engine) Source() ports.GraphSource {
	return e.source
}
