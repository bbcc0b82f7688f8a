package source

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch flushes the cache whenever the backing file (or anything in the
// backing directory) changes on disk, and blocks until the context is
// cancelled. The parent directory is watched rather than the file itself so
// editor-style replace-by-rename is caught.
func Watch(ctx context.Context, path string, cached *Cached, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.Info("watching source for changes", "path", path)

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			// Directory sources flush on any change inside the directory.
			if filepath.Clean(event.Name) != target && filepath.Dir(filepath.Clean(event.Name)) != target {
				continue
			}
			logger.Debug("source changed", "event", event.Op.String(), "name", event.Name)
			cached.Flush()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
