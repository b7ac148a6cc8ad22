package domain

import (
	"path/filepath"
	"strings"
)

// SupportedFormats lists the audio container formats the transcription API
// accepts. Matching is case-insensitive and ignores the leading dot.
var SupportedFormats = []string{"m4a", "mp3", "webm", "mp4", "mpga", "wav", "mpeg"}

// DefaultLanguage is the fallback language hint applied when the user does not
// pass one explicitly.
const DefaultLanguage = "pl"

// TranscriptSuffix terminates every transcript output name. The summarizer
// uses it to discover previously produced transcripts.
const TranscriptSuffix = "-transcript.txt"

// Candidate is a filesystem path identified as an audio file eligible for
// transcription.
type Candidate struct {
	Path string
	Ext  string // lower-cased, without the leading dot
}

// NewCandidate builds a Candidate from a path, normalizing the extension.
func NewCandidate(path string) Candidate {
	return Candidate{
		Path: path,
		Ext:  NormalizeExt(path),
	}
}

// NormalizeExt returns the file extension lower-cased with the leading dot
// stripped. An extensionless path yields "".
func NormalizeExt(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// IsSupported reports whether ext (normalized form) is a recognized audio
// format.
func IsSupported(ext string) bool {
	for _, f := range SupportedFormats {
		if ext == f {
			return true
		}
	}
	return false
}

// Outcome classifies the terminal result of processing one candidate.
type Outcome string

const (
	OutcomeSucceeded       Outcome = "succeeded"
	OutcomeSkippedExists   Outcome = "skipped_already_exists"
	OutcomeSkippedNotFound Outcome = "skipped_not_found"
	OutcomeFailedAPI       Outcome = "failed_api_error"
	OutcomeFailedWrite     Outcome = "failed_write_error"
)

// Failed reports whether the outcome counts as a job failure. Skips are not
// failures: they leave the filesystem exactly as found.
func (o Outcome) Failed() bool {
	return o == OutcomeFailedAPI || o == OutcomeFailedWrite
}

// Result is the typed per-candidate record returned by the job runner instead
// of an error: expected per-file conditions never propagate as errors.
type Result struct {
	Candidate  Candidate
	Outcome    Outcome
	OutputPath string
	Err        error // underlying cause for failed outcomes, nil otherwise
}

// Summary aggregates the results of one batch.
type Summary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// Add folds one result into the summary.
func (s *Summary) Add(r Result) {
	switch {
	case r.Outcome == OutcomeSucceeded:
		s.Succeeded++
	case r.Outcome.Failed():
		s.Failed++
	default:
		s.Skipped++
	}
}

// Total returns the number of candidates processed.
func (s *Summary) Total() int {
	return s.Succeeded + s.Skipped + s.Failed
}
