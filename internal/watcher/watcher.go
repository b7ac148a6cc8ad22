package watcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/marekkowalczyk/audio-transcribe/internal/domain"
	"github.com/marekkowalczyk/audio-transcribe/internal/logger"
)

type implWatcher struct {
	dir         string
	handler     EventHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
	settleDelay time.Duration
}

// Start runs the event loop until the context is cancelled. Detected files
// are handled one at a time, in arrival order; an event arriving while a
// handler runs waits in the fsnotify channel.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for new audio files (formats: %s)",
		w.dir, strings.Join(domain.SupportedFormats, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}

			c := domain.NewCandidate(event.Name)
			if !domain.IsSupported(c.Ext) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New audio file detected: %s", event.Name)

			// Give the producer time to finish writing the file.
			time.Sleep(w.settleDelay)

			w.handler(ctx, c)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying filesystem watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
