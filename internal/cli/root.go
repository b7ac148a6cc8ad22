package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/marekkowalczyk/audio-transcribe/internal/config"
	"github.com/marekkowalczyk/audio-transcribe/internal/domain"
	"github.com/marekkowalczyk/audio-transcribe/internal/logger"
	"github.com/marekkowalczyk/audio-transcribe/internal/resolver"
	"github.com/marekkowalczyk/audio-transcribe/internal/runner"
	"github.com/marekkowalczyk/audio-transcribe/internal/transcriber"
	"github.com/marekkowalczyk/audio-transcribe/internal/watcher"
)

var (
	flagFile      string
	flagDirectory string
	flagRecursive bool
	flagWatch     bool
	flagLanguage  string
	flagOutputDir string
	flagConfig    string
)

var rootCmd = &cobra.Command{
	Use:   "audio-transcribe",
	Short: "Transcribe audio files with the Whisper API",
	Long: `audio-transcribe walks a file or directory tree, sends each supported audio
file to the Whisper transcription API, and writes the transcript to a text file.
Files that already have a transcript are skipped, so re-running over the same
directory is cheap.`,
	SilenceUsage: true,
	RunE:         runTranscribe,
}

func init() {
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "audio file to transcribe")
	rootCmd.Flags().StringVarP(&flagDirectory, "directory", "d", "", "directory of audio files to transcribe")
	rootCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "recurse into subdirectories (requires --directory)")
	rootCmd.Flags().StringVarP(&flagLanguage, "language", "l", "", "two-letter language hint (defaults to \""+domain.DefaultLanguage+"\" with a notice)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "keep watching the directory for new files (requires --directory)")
	rootCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "directory for transcript files (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: "+config.DefaultPath+")")

	rootCmd.AddCommand(summarizeCmd)
}

// Execute runs the CLI and exits nonzero on error.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// validateArgs enforces the exactly-one-of file/directory contract and the
// flags that only make sense in directory mode.
func validateArgs(file, dir, language string, recursive, watch bool) error {
	if file == "" && dir == "" {
		return errors.New("exactly one of --file or --directory is required")
	}
	if file != "" && dir != "" {
		return errors.New("--file and --directory are mutually exclusive")
	}
	if dir == "" && recursive {
		return errors.New("--recursive requires --directory")
	}
	if dir == "" && watch {
		return errors.New("--watch requires --directory")
	}
	if language != "" && len(language) != 2 {
		return fmt.Errorf("--language must be a two-letter code, got %q", language)
	}
	return nil
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := validateArgs(flagFile, flagDirectory, flagLanguage, flagRecursive, flagWatch); err != nil {
		return err
	}

	// A .env next to the invocation may carry the API keys.
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagOutputDir != "" {
		cfg.Output.Dir = flagOutputDir
	}

	log := logger.New(cfg.Logging.Level)

	key, err := cfg.ResolveOpenAIKey()
	if err != nil {
		return err
	}

	svc := transcriber.New(key, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	run := runner.New(svc, log, runner.Options{
		OutputDir: cfg.Output.Dir,
		Language:  flagLanguage,
	})
	res := resolver.New(log)

	if flagFile != "" {
		c, err := res.File(flagFile)
		if err != nil {
			return err
		}
		result := run.Run(ctx, c)
		if result.Outcome.Failed() {
			return fmt.Errorf("transcription of %s failed: %w", flagFile, result.Err)
		}
		return nil
	}

	seq, err := res.Directory(flagDirectory, flagRecursive)
	if err != nil {
		return err
	}

	summary := run.RunBatch(ctx, seq)

	if flagWatch {
		return runWatch(ctx, cfg, run, log)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", summary.Failed, summary.Total())
	}
	return nil
}

// runWatch keeps processing newly created files until interrupted.
func runWatch(ctx context.Context, cfg *config.Config, run runner.Runner, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(flagDirectory, func(ctx context.Context, c domain.Candidate) {
		run.Run(ctx, c)
	}, log, time.Duration(cfg.Watch.SettleDelayMS)*time.Millisecond)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
