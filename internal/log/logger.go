package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	once   sync.Once
	logger *slog.Logger
)

// ParseLevel maps a level name to a slog level.
// logic: default to INFO. If level is invalid, fallback to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG", "TRACE":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup initializes the global logger writing JSON to stderr. Extensions keep
// stdout for their own output. Only the first call takes effect.
func Setup(level string) {
	setupWithWriter(level, os.Stderr)
}

func setupWithWriter(level string, w io.Writer) {
	once.Do(func() {
		logger = New(level, w)
		slog.SetDefault(logger)
	})
}

// New builds a JSON logger at level writing to w without touching the global.
func New(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Get returns the configured logger, or a default one if Setup hasn't been called.
func Get() *slog.Logger {
	if logger == nil {
		Setup("INFO")
	}
	return logger
}

// WithComponent returns a logger with the component field set.
func WithComponent(name string) *slog.Logger {
	return Get().With(slog.String("component", name))
}
