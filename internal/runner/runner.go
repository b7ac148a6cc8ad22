package runner

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/marekkowalczyk/audio-transcribe/internal/domain"
	"github.com/marekkowalczyk/audio-transcribe/internal/transcriber"
)

// OutputName derives the transcript file name for a candidate. The normalized
// extension is part of the name so same-named inputs of different formats
// cannot collide on one output.
func OutputName(c domain.Candidate) string {
	base := strings.TrimSuffix(filepath.Base(c.Path), filepath.Ext(c.Path))
	return base + "-" + c.Ext + domain.TranscriptSuffix
}

// Run processes one candidate: derive the output path, honor the idempotence
// guard, read the input, call the transcription service, write the result.
// Every step failure is downgraded to an outcome and exactly one status line
// is logged.
func (r *implRunner) Run(ctx context.Context, c domain.Candidate) domain.Result {
	outPath := filepath.Join(r.outputDir, OutputName(c))

	// Idempotence guard: an existing transcript short-circuits before the
	// input is touched or the API is called.
	if _, err := os.Stat(outPath); err == nil {
		r.logger.Info(ctx, "Skipping %s: transcript already exists at %s", c.Path, outPath)
		return domain.Result{Candidate: c, Outcome: domain.OutcomeSkippedExists, OutputPath: outPath}
	}

	f, err := os.Open(c.Path)
	if err != nil {
		// The file vanished between resolution and processing.
		r.logger.Warn(ctx, "Skipping %s: cannot open input: %v", c.Path, err)
		return domain.Result{Candidate: c, Outcome: domain.OutcomeSkippedNotFound, Err: err}
	}
	defer f.Close()

	r.languageNotice(ctx)

	text, err := r.service.Transcribe(ctx, transcriber.Request{
		Audio:    f,
		Filename: filepath.Base(c.Path),
		Language: r.language,
	})
	if err != nil {
		r.logger.Error(ctx, "Transcription failed for %s: %v", c.Path, err)
		return domain.Result{Candidate: c, Outcome: domain.OutcomeFailedAPI, Err: err}
	}

	if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
		r.logger.Error(ctx, "Failed to write transcript %s: %v", outPath, err)
		return domain.Result{Candidate: c, Outcome: domain.OutcomeFailedWrite, Err: err}
	}

	r.logger.Info(ctx, "Transcribed %s -> %s", c.Path, outPath)
	return domain.Result{Candidate: c, Outcome: domain.OutcomeSucceeded, OutputPath: outPath}
}

// RunBatch processes candidates strictly sequentially. A failed candidate has
// no effect on the ones after it.
func (r *implRunner) RunBatch(ctx context.Context, candidates iter.Seq[domain.Candidate]) domain.Summary {
	var summary domain.Summary

	for c := range candidates {
		summary.Add(r.Run(ctx, c))
	}

	r.logger.Info(ctx, "Batch complete: %d succeeded, %d skipped, %d failed",
		summary.Succeeded, summary.Skipped, summary.Failed)
	return summary
}

// languageNotice logs, once per process run, that the fixed fallback language
// is in effect because the caller did not pass one.
func (r *implRunner) languageNotice(ctx context.Context) {
	if !r.languageDefaulted || r.noticeShown {
		return
	}
	r.noticeShown = true
	r.logger.Info(ctx, "No language specified, using default %q", r.language)
}
