package transcriber

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Transcribe sends the audio to the Whisper API and returns the plain-text
// transcript. The call blocks until the remote service responds or errors.
func (s *implService) Transcribe(ctx context.Context, req Request) (string, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.model,
		Reader:   req.Audio,
		FilePath: req.Filename,
		Format:   openai.AudioResponseFormatText,
		Language: req.Language,
	})
	if err != nil {
		return "", fmt.Errorf("create transcription: %w", err)
	}
	return resp.Text, nil
}
