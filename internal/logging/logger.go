// Package logging builds the slog loggers shared by the lettrix API and the pool server.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Config selects the level, encoding and destination of lettrix logs.
type Config struct {
	Level  slog.Level
	Format string // "json" or "text"
	Output io.Writer
}

// DefaultConfig derives the log setup from the process environment.
// Lambda invocations log JSON for CloudWatch, local runs log text, and
// LOG_FORMAT forces either. DEBUG enables letter assembly diagnostics such as
// fallback pools and unresolved placeholders.
func DefaultConfig() Config {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}

	format := "json"
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		format = "text"
	}
	if f := os.Getenv("LOG_FORMAT"); f == "json" || f == "text" {
		format = f
	}

	return Config{
		Level:  level,
		Format: format,
		Output: os.Stdout,
	}
}

// New returns the root logger; components derive theirs with WithComponent.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.Level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	return slog.New(handler)
}

// WithComponent tags logger with the pipeline stage it serves (api, assembler, quota, pdf...).
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With("component", component)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
