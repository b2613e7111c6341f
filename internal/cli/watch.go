package cli

import (
	"context"
	"log/slog"

	"github.com/rtakeda/flowdoc"
	"github.com/rtakeda/flowdoc/internal/presentation/tui"
)

// WatchOptions configures the dev-mode watch loop.
type WatchOptions struct {
	Engine  *flowdoc.Engine
	DocPath string
	Logger  *slog.Logger
	Banner  bool
}

// RunWatch syncs the document once, then re-syncs on every flow change
// until the context is cancelled. Sync failures (e.g. a half-saved flow
// file) are logged and retried on the next change instead of aborting.
func RunWatch(ctx context.Context, opts WatchOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Banner {
		tui.PrintBanner(flowdoc.Version)
	}

	logger.Info("Starting Watcher", "doc", opts.DocPath)

	changes, err := opts.Engine.Watch(ctx)
	if err != nil {
		return err
	}

	if err := opts.Engine.Sync(ctx, opts.DocPath); err != nil {
		logger.Error("Initial sync failed", "err", err)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watcher stopped")
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Info("Flow changed, re-syncing", "doc", opts.DocPath)
			if err := opts.Engine.Sync(ctx, opts.DocPath); err != nil {
				logger.Error("Sync failed", "err", err)
			}
		}
	}
}
