package resolver

import (
	"github.com/marekkowalczyk/audio-transcribe/internal/logger"
)

type implResolver struct {
	logger logger.Logger
}

// New creates a Resolver instance.
func New(log logger.Logger) Resolver {
	return &implResolver{
		logger: log,
	}
}
