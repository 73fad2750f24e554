package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

/***** STRUCT **********************************/

type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json" or "text"
	Output io.Writer
}

/***** FUNCTION ********************************/

// InitLogger builds the structured logger and installs it with
// slog.SetDefault. Logs go to stderr unless cfg.Output is set, so that
// command output on stdout stays clean.
func InitLogger(cfg LogConfig) *slog.Logger {
	out := cfg.Output

	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var handler slog.Handler

	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler).With(slog.String("app", "ever"))
	slog.SetDefault(logger)

	return logger
}

/***********************************************/

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

/***********************************************/
