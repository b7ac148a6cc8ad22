package runner

import (
	"context"
	"iter"

	"github.com/marekkowalczyk/audio-transcribe/internal/domain"
)

// Runner processes candidates end-to-end. It never returns an error: every
// per-file condition is classified into the result's Outcome so one bad file
// cannot abort a batch.
type Runner interface {
	Run(ctx context.Context, c domain.Candidate) domain.Result
	RunBatch(ctx context.Context, candidates iter.Seq[domain.Candidate]) domain.Summary
}
