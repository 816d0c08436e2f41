package request

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch calls onChange each time the file at path is written, created or
// replaced, once the writes have settled for debounce. It blocks until ctx is
// done. The parent directory is watched so that editors replacing the file by
// rename are seen.
func Watch(ctx context.Context, logger *zap.Logger, path string, debounce time.Duration, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	tick := max(debounce/4, 10*time.Millisecond)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var pending time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != abs {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			logger.Debug("batch file changed", zap.String("path", abs), zap.Stringer("op", event.Op))

			pending = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Warn("watcher error", zap.Error(err))

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}

				onChange()
			}
		}
	}
}
