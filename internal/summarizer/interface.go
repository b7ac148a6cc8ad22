package summarizer

import "context"

// Summarizer reads transcript files and produces LLM-generated Markdown
// summaries.
type Summarizer interface {
	SummarizeAll(ctx context.Context, srcDir, destDir string) error
}
