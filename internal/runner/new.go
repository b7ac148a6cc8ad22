package runner

import (
	"github.com/marekkowalczyk/audio-transcribe/internal/domain"
	"github.com/marekkowalczyk/audio-transcribe/internal/logger"
	"github.com/marekkowalczyk/audio-transcribe/internal/transcriber"
)

// Options configures a Runner. An empty Language selects the fixed fallback
// and arms the one-time notice; an empty OutputDir means the current working
// directory.
type Options struct {
	OutputDir string
	Language  string
}

type implRunner struct {
	service transcriber.Service
	logger  logger.Logger

	outputDir string
	language  string

	languageDefaulted bool
	noticeShown       bool
}

// New creates a Runner instance.
func New(svc transcriber.Service, log logger.Logger, opts Options) Runner {
	lang := opts.Language
	defaulted := false
	if lang == "" {
		lang = domain.DefaultLanguage
		defaulted = true
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}

	return &implRunner{
		service:           svc,
		logger:            log,
		outputDir:         outDir,
		language:          lang,
		languageDefaulted: defaulted,
	}
}
