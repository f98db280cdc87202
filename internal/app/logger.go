package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/simplehiit-backend/internal/config"
)

// ServiceName tags every record written by the CLI.
const ServiceName = "simplehiit"

// NewLogger builds the process logger from cfg, writes to os.Stderr and
// installs it as the slog default.
//
// "json" is for machines; "text" adds the source location for local runs.
// Level is debug, info, warn or error (case-insensitive); anything else is info.
// Every record carries the service name and build version.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", ServiceName),
		slog.String("version", Version),
	)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
