package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/marekkowalczyk/audio-transcribe/internal/config"
	"github.com/marekkowalczyk/audio-transcribe/internal/logger"
	"github.com/marekkowalczyk/audio-transcribe/internal/summarizer"
)

var (
	flagSummarizeInput  string
	flagSummarizeOutput string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Generate Markdown summaries for existing transcripts",
	Long: `summarize reads the *-transcript.txt files in a directory and writes a
Markdown summary for each one using Gemini. Transcripts that already have a
summary are skipped.`,
	SilenceUsage: true,
	RunE:         runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVarP(&flagSummarizeInput, "input", "i", ".", "directory containing transcript files")
	summarizeCmd.Flags().StringVarP(&flagSummarizeOutput, "output", "o", "", "directory for summary files (default: same as --input)")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)

	keys, err := cfg.ResolveGeminiKeys()
	if err != nil {
		return err
	}

	dest := flagSummarizeOutput
	if dest == "" {
		dest = flagSummarizeInput
	}

	s := summarizer.New(cfg.Gemini.Model, keys, log)
	return s.SummarizeAll(ctx, flagSummarizeInput, dest)
}
