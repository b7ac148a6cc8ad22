package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/marekkowalczyk/audio-transcribe/internal/domain"
	"github.com/marekkowalczyk/audio-transcribe/internal/logger"
	"github.com/marekkowalczyk/audio-transcribe/internal/transcriber"
)

// fakeService records calls and returns a canned transcript or error.
type fakeService struct {
	calls     []transcriber.Request
	languages []string
	text      string
	err       error
}

func (f *fakeService) Transcribe(ctx context.Context, req transcriber.Request) (string, error) {
	f.calls = append(f.calls, req)
	f.languages = append(f.languages, req.Language)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func writeAudio(t *testing.T, dir, name string) domain.Candidate {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("fake audio bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	return domain.NewCandidate(path)
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain", "interview.mp3", "interview-mp3-transcript.txt"},
		{"nested path uses base name", "a/b/talk.wav", "talk-wav-transcript.txt"},
		{"uppercase extension normalized", "MEETING.M4A", "MEETING-m4a-transcript.txt"},
		{"dots in base survive", "2024.01.05-standup.mp4", "2024.01.05-standup-mp4-transcript.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputName(domain.NewCandidate(tt.path))
			if got != tt.want {
				t.Errorf("OutputName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRunSuccessWritesTranscript(t *testing.T) {
	dir := t.TempDir()
	c := writeAudio(t, dir, "interview.mp3")

	svc := &fakeService{text: "hello from the API"}
	r := New(svc, logger.NewWithWriter("error", io.Discard), Options{OutputDir: dir, Language: "en"})

	res := r.Run(context.Background(), c)
	if res.Outcome != domain.OutcomeSucceeded {
		t.Fatalf("Outcome = %v, want succeeded (err: %v)", res.Outcome, res.Err)
	}

	want := filepath.Join(dir, "interview-mp3-transcript.txt")
	if res.OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, want)
	}

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("transcript not written: %v", err)
	}
	if string(data) != "hello from the API" {
		t.Errorf("transcript content = %q, want verbatim API text", data)
	}

	if len(svc.calls) != 1 {
		t.Fatalf("API calls = %d, want 1", len(svc.calls))
	}
	if svc.calls[0].Filename != "interview.mp3" {
		t.Errorf("request filename = %q, want %q", svc.calls[0].Filename, "interview.mp3")
	}
	if svc.languages[0] != "en" {
		t.Errorf("request language = %q, want %q", svc.languages[0], "en")
	}
}

func TestRunIdempotence(t *testing.T) {
	dir := t.TempDir()
	c := writeAudio(t, dir, "interview.mp3")

	svc := &fakeService{text: "first pass"}
	r := New(svc, logger.NewWithWriter("error", io.Discard), Options{OutputDir: dir, Language: "en"})

	first := r.Run(context.Background(), c)
	if first.Outcome != domain.OutcomeSucceeded {
		t.Fatalf("first run outcome = %v", first.Outcome)
	}

	second := r.Run(context.Background(), c)
	if second.Outcome != domain.OutcomeSkippedExists {
		t.Errorf("second run outcome = %v, want skipped_already_exists", second.Outcome)
	}
	if len(svc.calls) != 1 {
		t.Errorf("API calls after rerun = %d, want exactly 1", len(svc.calls))
	}

	data, _ := os.ReadFile(first.OutputPath)
	if string(data) != "first pass" {
		t.Errorf("existing transcript was overwritten: %q", data)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	c := domain.NewCandidate(filepath.Join(dir, "vanished.mp3"))

	svc := &fakeService{text: "unused"}
	r := New(svc, logger.NewWithWriter("error", io.Discard), Options{OutputDir: dir, Language: "en"})

	res := r.Run(context.Background(), c)
	if res.Outcome != domain.OutcomeSkippedNotFound {
		t.Errorf("Outcome = %v, want skipped_not_found", res.Outcome)
	}
	if len(svc.calls) != 0 {
		t.Errorf("API was called for a missing input")
	}
}

func TestRunAPIFailure(t *testing.T) {
	dir := t.TempDir()
	c := writeAudio(t, dir, "broken.wav")

	apiErr := errors.New("401 invalid api key")
	svc := &fakeService{err: apiErr}

	var buf bytes.Buffer
	r := New(svc, logger.NewWithWriter("info", &buf), Options{OutputDir: dir, Language: "en"})

	res := r.Run(context.Background(), c)
	if res.Outcome != domain.OutcomeFailedAPI {
		t.Errorf("Outcome = %v, want failed_api_error", res.Outcome)
	}
	if !errors.Is(res.Err, apiErr) {
		t.Errorf("Err = %v, want wrapped API error", res.Err)
	}
	if !strings.Contains(buf.String(), "401 invalid api key") {
		t.Errorf("underlying API message not logged: %q", buf.String())
	}

	if _, err := os.Stat(filepath.Join(dir, "broken-wav-transcript.txt")); !os.IsNotExist(err) {
		t.Error("output file must not exist after an API failure")
	}
}

func TestRunWriteFailure(t *testing.T) {
	inDir := t.TempDir()
	c := writeAudio(t, inDir, "talk.mp3")

	// Point the output at a path whose parent does not exist.
	outDir := filepath.Join(t.TempDir(), "missing", "deeper")
	svc := &fakeService{text: "text"}
	r := New(svc, logger.NewWithWriter("error", io.Discard), Options{OutputDir: outDir, Language: "en"})

	res := r.Run(context.Background(), c)
	if res.Outcome != domain.OutcomeFailedWrite {
		t.Errorf("Outcome = %v, want failed_write_error", res.Outcome)
	}
	if res.Err == nil {
		t.Error("write failure must carry the underlying error")
	}
}

func TestDefaultLanguageNoticeOnce(t *testing.T) {
	dir := t.TempDir()
	a := writeAudio(t, dir, "a.mp3")
	b := writeAudio(t, dir, "b.mp3")

	svc := &fakeService{text: "t"}

	var buf bytes.Buffer
	r := New(svc, logger.NewWithWriter("info", &buf), Options{OutputDir: dir})

	r.Run(context.Background(), a)
	r.Run(context.Background(), b)

	if got := slices.Compact(svc.languages); len(got) != 1 || got[0] != domain.DefaultLanguage {
		t.Errorf("languages sent = %v, want all %q", svc.languages, domain.DefaultLanguage)
	}

	notices := strings.Count(buf.String(), "No language specified")
	if notices != 1 {
		t.Errorf("default-language notice logged %d times, want exactly 1", notices)
	}
}

func TestNoNoticeWhenLanguageExplicit(t *testing.T) {
	dir := t.TempDir()
	a := writeAudio(t, dir, "a.mp3")

	svc := &fakeService{text: "t"}

	var buf bytes.Buffer
	r := New(svc, logger.NewWithWriter("info", &buf), Options{OutputDir: dir, Language: "de"})

	r.Run(context.Background(), a)

	if strings.Contains(buf.String(), "No language specified") {
		t.Error("notice must not appear when a language was supplied")
	}
}

func TestRunBatchContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeAudio(t, dir, "good.mp3")
	missing := domain.NewCandidate(filepath.Join(dir, "gone.wav"))
	alsoGood := writeAudio(t, dir, "also-good.m4a")

	svc := &fakeService{text: "ok"}
	r := New(svc, logger.NewWithWriter("error", io.Discard), Options{OutputDir: dir, Language: "en"})

	seq := func(yield func(domain.Candidate) bool) {
		for _, c := range []domain.Candidate{good, missing, alsoGood} {
			if !yield(c) {
				return
			}
		}
	}

	summary := r.RunBatch(context.Background(), seq)
	if summary.Succeeded != 2 || summary.Skipped != 1 || summary.Failed != 0 {
		t.Errorf("summary = %+v, want 2 succeeded, 1 skipped", summary)
	}
	if summary.Total() != 3 {
		t.Errorf("Total() = %d, want 3", summary.Total())
	}
}
