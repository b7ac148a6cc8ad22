package domain

import "testing"

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"lowercase", "a.mp3", "mp3"},
		{"uppercase", "A.MP3", "mp3"},
		{"mixed", "a.WaV", "wav"},
		{"no extension", "noext", ""},
		{"trailing dot", "weird.", ""},
		{"nested path", "x/y/z.m4a", "m4a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeExt(tt.path); got != tt.want {
				t.Errorf("NormalizeExt(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	for _, ext := range SupportedFormats {
		if !IsSupported(ext) {
			t.Errorf("IsSupported(%q) = false, want true", ext)
		}
	}

	for _, ext := range []string{"txt", "flac", "ogg", "srt", ""} {
		if IsSupported(ext) {
			t.Errorf("IsSupported(%q) = true, want false", ext)
		}
	}
}

func TestOutcomeFailed(t *testing.T) {
	failed := []Outcome{OutcomeFailedAPI, OutcomeFailedWrite}
	for _, o := range failed {
		if !o.Failed() {
			t.Errorf("%s.Failed() = false, want true", o)
		}
	}

	ok := []Outcome{OutcomeSucceeded, OutcomeSkippedExists, OutcomeSkippedNotFound}
	for _, o := range ok {
		if o.Failed() {
			t.Errorf("%s.Failed() = true, want false", o)
		}
	}
}

func TestSummaryAdd(t *testing.T) {
	var s Summary
	s.Add(Result{Outcome: OutcomeSucceeded})
	s.Add(Result{Outcome: OutcomeSkippedExists})
	s.Add(Result{Outcome: OutcomeSkippedNotFound})
	s.Add(Result{Outcome: OutcomeFailedAPI})
	s.Add(Result{Outcome: OutcomeFailedWrite})

	if s.Succeeded != 1 || s.Skipped != 2 || s.Failed != 2 {
		t.Errorf("summary = %+v, want 1/2/2", s)
	}
	if s.Total() != 5 {
		t.Errorf("Total() = %d, want 5", s.Total())
	}
}
