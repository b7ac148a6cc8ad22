package transcriber

import (
	openai "github.com/sashabaranov/go-openai"
)

type implService struct {
	client *openai.Client
	model  string
}

// New creates a Whisper-backed Service. The client is constructed once here
// and carries the credential; nothing is stored in process-wide state.
// An empty baseURL keeps the default API endpoint.
func New(apiKey, baseURL, model string) Service {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &implService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}
