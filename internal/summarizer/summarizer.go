package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/marekkowalczyk/audio-transcribe/internal/domain"
)

const summaryPrompt = `You are an assistant that summarizes audio transcripts. Write a concise Markdown summary of the transcript below.

Requirements:
- Start with a one-sentence title describing the topic
- List the main points in the order they appear
- Keep technical terms exactly as spoken
- End with an "Action items" section when the transcript contains any

Transcript:
---
%s
---`

// SummarizeAll reads every transcript in srcDir, calls Gemini for each, and
// writes individual .summary.md files into destDir. Per-file failures are
// logged and counted, never fatal; existing summaries are skipped.
func (s *implSummarizer) SummarizeAll(ctx context.Context, srcDir, destDir string) error {
	transcripts, err := s.discoverTranscripts(srcDir)
	if err != nil {
		return fmt.Errorf("discover transcripts: %w", err)
	}

	if len(transcripts) == 0 {
		s.logger.Info(ctx, "No transcript files found in %s", srcDir)
		return nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	s.logger.Info(ctx, "Found %d transcripts to summarize", len(transcripts))

	successCount := 0
	failCount := 0
	skipCount := 0

	for i, path := range transcripts {
		name := strings.TrimSuffix(filepath.Base(path), domain.TranscriptSuffix)
		mdPath := filepath.Join(destDir, name+".summary.md")

		if _, err := os.Stat(mdPath); err == nil {
			s.logger.Info(ctx, "[%d/%d] Skipping %s: summary already exists", i+1, len(transcripts), name)
			skipCount++
			continue
		}

		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(transcripts), name)

		content, err := os.ReadFile(path)
		if err != nil {
			s.logger.Error(ctx, "Failed to read %s: %v", path, err)
			failCount++
			continue
		}

		summary, err := s.callGemini(ctx, string(content))
		if err != nil {
			s.logger.Error(ctx, "Failed to summarize %s: %v", name, err)
			failCount++
			continue
		}

		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			name,
			time.Now().Format("2006-01-02 15:04"),
			strings.TrimSpace(summary),
		)

		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			s.logger.Error(ctx, "Failed to write %s: %v", mdPath, err)
			failCount++
			continue
		}

		s.logger.Info(ctx, "[DONE] %s -> %s", name, mdPath)
		successCount++
	}

	s.logger.Info(ctx, "Summary complete: %d success, %d skipped, %d failed",
		successCount, skipCount, failCount)
	return nil
}

// callGemini sends the transcript to Gemini and returns the summary text,
// rotating API keys on quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, transcript)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		text, err := s.generate(ctx, key, s.model, prompt)
		if err != nil {
			msg := err.Error()
			if strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", err
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func (s *implSummarizer) discoverTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.HasSuffix(e.Name(), domain.TranscriptSuffix) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// generateGemini is the production generateFunc.
func generateGemini(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
