package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hapbridge/hap-go/pkg/log"
)

// NewLogger builds the operational logger described by cfg.
func NewLogger(cfg LoggingConfig) *slog.Logger {
	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		output = os.Stdout
	default:
		output = os.Stderr
	}
	return newLogger(cfg, output)
}

// NewEventLogger opens the bridge event log described by cfg, ready for
// hap.WithEventLogger. An empty path disables capture. A file-backed
// logger also implements io.Closer and should be closed on shutdown.
func NewEventLogger(cfg EventLogConfig) (log.Logger, error) {
	if cfg.Path == "" {
		return log.NoopLogger{}, nil
	}
	fl, err := log.NewFileLogger(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}
	return fl, nil
}

func newLogger(cfg LoggingConfig, output io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler).With("component", "hap")
}

// parseLevel defaults to info for unknown names.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
