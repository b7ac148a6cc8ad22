package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/marekkowalczyk/audio-transcribe/internal/logger"
)

// New creates a Watcher on dir. settleDelay is how long to wait after a create
// event before handing the file over, giving the producer time to finish
// writing it.
func New(dir string, handler EventHandler, log logger.Logger, settleDelay time.Duration) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		dir:         dir,
		handler:     handler,
		logger:      log,
		watcher:     fsw,
		settleDelay: settleDelay,
	}, nil
}
