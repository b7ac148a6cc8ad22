package watcher

import (
	"context"

	"github.com/marekkowalczyk/audio-transcribe/internal/domain"
)

// Watcher monitors a directory and feeds newly created audio files to a
// handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one detected candidate. Handlers are invoked
// sequentially from the event loop; they are expected to absorb their own
// failures.
type EventHandler func(ctx context.Context, c domain.Candidate)
