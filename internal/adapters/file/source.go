package file

import (
	"context"
	"crypto/md5"
	"fmt"
	"os"
	"time"

	"github.com/rtakeda/flowdoc/internal/compiler"
	"github.com/rtakeda/flowdoc/pkg/domain"
)

// FlowSource implements ports.GraphSource by reading a YAML flow
// definition from disk on every call. It also implements ports.Watchable
// via content-hash polling, for dev-mode re-sync.
type FlowSource struct {
	Path   string
	parser *compiler.Parser

	// PollInterval controls the watch loop; defaults to one second.
	PollInterval time.Duration
}

// NewFlowSource creates a graph source backed by the flow file at path.
func NewFlowSource(path string) *FlowSource {
	return &FlowSource{
		Path:   path,
		parser: compiler.NewParser(),
	}
}

// Graph reads and compiles the flow definition.
func (f *FlowSource) Graph() (*domain.Graph, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", f.Path, domain.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("failed to read flow definition: %w", err)
	}
	g, err := f.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return g, nil
}

// Watch signals whenever the flow file's content hash changes.
// The channel closes when ctx is cancelled.
func (f *FlowSource) Watch(ctx context.Context) (<-chan struct{}, error) {
	last, err := f.hash()
	if err != nil {
		return nil, err
	}

	interval := f.PollInterval
	if interval <= 0 {
		interval = time.Second
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				current, err := f.hash()
				if err != nil {
					// Transient read failures (editor swap files) are
					// expected mid-save; retry on the next tick.
					continue
				}
				if current != last {
					last = current
					select {
					case ch <- struct{}{}:
					default:
					}
				}
			}
		}
	}()
	return ch, nil
}

func (f *FlowSource) hash() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", md5.Sum(data)), nil
}
