package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

// Logger is the leveled logging interface used across the tool. Context is
// accepted for call-site symmetry with blocking operations; implementations
// may ignore it.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func parseLevel(s string) level {
	switch strings.ToLower(s) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

type implLogger struct {
	logger *log.Logger
	min    level
}

// New creates a Logger writing to stdout at the given minimum level.
// Unknown level names fall back to info.
func New(levelName string) Logger {
	return NewWithWriter(levelName, os.Stdout)
}

// NewWithWriter creates a Logger with an explicit sink. Used by tests to
// capture output.
func NewWithWriter(levelName string, w io.Writer) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		min:    parseLevel(levelName),
	}
}

func (l *implLogger) logf(lv level, prefix, msg string, args ...interface{}) {
	if lv < l.min {
		return
	}
	l.logger.Printf(prefix+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelDebug, "[DEBUG] ", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelInfo, "[INFO] ", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelWarn, "[WARN] ", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelError, "[ERROR] ", msg, args...)
}
