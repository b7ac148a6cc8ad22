package summarizer

import (
	"context"

	"github.com/marekkowalczyk/audio-transcribe/internal/logger"
)

// generateFunc produces a summary for a prompt with one specific API key.
// Swapped out in tests.
type generateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
	generate   generateFunc
}

// New creates a Summarizer that rotates through the supplied Gemini API keys
// when one hits its quota.
func New(model string, apiKeys []string, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys:  apiKeys,
		model:    model,
		logger:   log,
		generate: generateGemini,
	}
}
