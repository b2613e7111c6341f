package docsync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rtakeda/flowdoc/internal/presentation/graph"
	"github.com/rtakeda/flowdoc/pkg/domain"
	"github.com/rtakeda/flowdoc/pkg/observability"
	"github.com/rtakeda/flowdoc/pkg/ports"
)

// Syncer ties the renderer and the patcher to a document backend.
// Each Sync run is a full regeneration: read once, transform once,
// write once. The target file is left untouched on any failure prior
// to the write step.
type Syncer struct {
	Docs ports.DocumentStore

	// Marker overrides; the package defaults are used when empty.
	StartMarker string
	EndMarker   string

	Logger  *slog.Logger
	Metrics *observability.Metrics
}

// NewSyncer creates a Syncer over the given document store.
func NewSyncer(docs ports.DocumentStore) *Syncer {
	return &Syncer{Docs: docs}
}

func (s *Syncer) markers() (string, string) {
	start, end := s.StartMarker, s.EndMarker
	if start == "" {
		start = StartMarker
	}
	if end == "" {
		end = EndMarker
	}
	return start, end
}

func (s *Syncer) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// render produces the fresh diagram text for the graph, recording the
// duration when metrics are attached.
func (s *Syncer) render(g *domain.Graph) string {
	started := time.Now()
	diagram := graph.GenerateMermaid(g)
	if s.Metrics != nil {
		s.Metrics.ObserveRender(time.Since(started))
	}
	return diagram
}

// patched computes the new document content for docPath without writing it.
func (s *Syncer) patched(ctx context.Context, g *domain.Graph, docPath string) (current string, next string, err error) {
	current, err = s.Docs.ReadDocument(ctx, docPath)
	if err != nil {
		return "", "", err
	}

	start, end := s.markers()
	next, err = Patch(current, start, end, s.render(g))
	if err != nil {
		var missing *MissingMarkerError
		if errors.As(err, &missing) {
			missing.Path = docPath
		}
		return "", "", err
	}
	return current, next, nil
}

// Sync regenerates the diagram block for g inside the document at docPath.
// It is a no-op write-wise when the document is already up to date.
func (s *Syncer) Sync(ctx context.Context, g *domain.Graph, docPath string) error {
	current, next, err := s.patched(ctx, g, docPath)
	if err != nil {
		if s.Metrics != nil {
			s.Metrics.RecordSync("error")
		}
		return err
	}

	if next == current {
		s.logger().Debug("document already in sync", "path", docPath)
		if s.Metrics != nil {
			s.Metrics.RecordSync("unchanged")
		}
		return nil
	}

	if err := s.Docs.WriteDocument(ctx, docPath, next); err != nil {
		if s.Metrics != nil {
			s.Metrics.RecordSync("error")
		}
		return err
	}

	s.logger().Info("document updated", "path", docPath)
	if s.Metrics != nil {
		s.Metrics.RecordSync("updated")
	}
	return nil
}

// Check reports whether the document at docPath already contains the
// current diagram. It never writes; drift checking is what CI wants.
func (s *Syncer) Check(ctx context.Context, g *domain.Graph, docPath string) (bool, error) {
	current, next, err := s.patched(ctx, g, docPath)
	if err != nil {
		return false, err
	}
	return next == current, nil
}
