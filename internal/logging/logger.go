// Package logging builds the categorised zap loggers used across storyteller.
// Logs go to stderr or a file, never to stdout, so they cannot interleave
// with the story itself. Categories can be switched off individually in the
// logging section of the config.
package logging

import (
	"fmt"
	"strings"

	"storyteller/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem; it becomes the zap logger name.
type Category string

const (
	CategoryBoot       Category = "boot"       // startup, config loading
	CategoryNarrator   Category = "narrator"   // plain line-by-line telling
	CategoryPager      Category = "pager"      // full-screen front end
	CategoryTranscript Category = "transcript" // whole-story output
)

// Logger wraps a root zap logger with per-category filtering.
type Logger struct {
	root *zap.Logger
	cfg  config.LoggingConfig
}

// ParseLevel maps a config level string to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// New builds a logger from cfg. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{"stderr"}

	root, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &Logger{root: root, cfg: cfg}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{root: zap.NewNop()}
}

// Root returns the uncategorised zap logger.
func (l *Logger) Root() *zap.Logger {
	if l == nil || l.root == nil {
		return zap.NewNop()
	}
	return l.root
}

// With returns a copy whose loggers all carry fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{root: l.Root().With(fields...), cfg: l.cfg}
}

// Get returns the named logger for a category, or a no-op logger when the
// category is switched off.
func (l *Logger) Get(cat Category) *zap.Logger {
	if l == nil || !l.cfg.IsCategoryEnabled(string(cat)) {
		return zap.NewNop()
	}
	return l.Root().Named(string(cat))
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.Root().Sync()
}
