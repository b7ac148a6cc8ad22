package resolver

import (
	"iter"

	"github.com/marekkowalczyk/audio-transcribe/internal/domain"
)

// Resolver turns user-supplied file or directory arguments into candidate
// audio files.
type Resolver interface {
	// File validates that path names an existing regular file with a
	// supported audio extension and returns it as a single candidate.
	File(path string) (domain.Candidate, error)

	// Directory validates that path names an existing directory and returns
	// a lazy, restartable sequence of the matching audio files inside it.
	// With recursive set, the whole subtree is walked depth-first; otherwise
	// only direct children are considered. Non-audio entries are skipped
	// silently in both modes.
	Directory(path string, recursive bool) (iter.Seq[domain.Candidate], error)
}
