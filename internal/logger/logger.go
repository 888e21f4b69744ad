package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/sebastiantruijens/moviedeck/internal/config"
)

const timeFormat = "2006-01-02 15:04:05"

// New builds a slog logger writing to w. Text output goes through tint;
// color is only used when w is a terminal.
func New(cfg config.Logging, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	level := ParseLevel(cfg.Level)

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: cfg.AddSource,
			Level:     level,
		})
	default:
		handler = tint.NewHandler(w, &tint.Options{
			AddSource:  cfg.AddSource,
			Level:      level,
			TimeFormat: timeFormat,
			NoColor:    !isTerminal(w),
		})
	}
	return slog.New(handler)
}

// OpenFile creates a logger appending to cfg.File. The TUI owns the
// terminal, so its logs never go to stdout.
func OpenFile(cfg config.Logging) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
	}
	return New(cfg, f), f, nil
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
