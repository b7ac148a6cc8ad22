package transcriber

import (
	"context"
	"io"
)

// Request carries one audio payload to the transcription service. Filename is
// the original base name so the remote side can sniff the container format.
type Request struct {
	Audio    io.Reader
	Filename string
	Language string // optional two-letter hint
}

// Service is the boundary to the remote transcription API.
type Service interface {
	Transcribe(ctx context.Context, req Request) (string, error)
}
