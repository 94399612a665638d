package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

// Get returns the shared logger. It is usable before Init is called.
func Get() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// Init installs a text logger on stderr at the given level and routes the
// standard log package through it.
func Init(level string) *slog.Logger {
	return InitWriter(os.Stderr, level)
}

func InitWriter(w io.Writer, level string) *slog.Logger {
	lvl := ParseLevel(level)
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	l := slog.New(h)
	current.Store(l)
	slog.SetDefault(l)
	return l
}

// Discard mutes all logging. Used by tests.
func Discard() {
	current.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
