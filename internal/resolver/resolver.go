package resolver

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/marekkowalczyk/audio-transcribe/internal/domain"
)

func (r *implResolver) File(path string) (domain.Candidate, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return domain.Candidate{}, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	}

	c := domain.NewCandidate(path)
	if !domain.IsSupported(c.Ext) {
		return domain.Candidate{}, &domain.UnsupportedFormatError{Path: path, Ext: c.Ext}
	}

	return c, nil
}

func (r *implResolver) Directory(path string, recursive bool) (iter.Seq[domain.Candidate], error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrInvalidDirectory)
	}

	if recursive {
		return r.walk(path), nil
	}
	return r.list(path), nil
}

// list yields matching direct children of dir, lazily.
func (r *implResolver) list(dir string) iter.Seq[domain.Candidate] {
	return func(yield func(domain.Candidate) bool) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			r.logger.Warn(context.Background(), "Failed to read directory %s: %v", dir, err)
			return
		}

		for _, e := range entries {
			if !e.Type().IsRegular() {
				continue
			}
			c := domain.NewCandidate(filepath.Join(dir, e.Name()))
			if !domain.IsSupported(c.Ext) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// errStopWalk aborts a walk early when the consumer stops pulling.
var errStopWalk = fmt.Errorf("walk stopped")

// walk yields matching files at every depth below root, lazily.
func (r *implResolver) walk(root string) iter.Seq[domain.Candidate] {
	return func(yield func(domain.Candidate) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped, same as unsupported ones.
				r.logger.Debug(context.Background(), "Skipping unreadable entry %s: %v", path, err)
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			c := domain.NewCandidate(path)
			if !domain.IsSupported(c.Ext) {
				return nil
			}
			if !yield(c) {
				return errStopWalk
			}
			return nil
		})
		if err != nil && err != errStopWalk {
			r.logger.Warn(context.Background(), "Directory walk %s aborted: %v", root, err)
		}
	}
}
