package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stdout

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}
)

// SetOutput changes where log records are written.  In a wasm build
// os.Stdout ends up in the browser console, which is the default.
// Must be called before the first GetLogger call to take effect.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// GetLogger returns the shared router logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		mu.Lock()
		w := output
		mu.Unlock()

		handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler).With("component", "vgnav")
	})
	return logger
}

// SetLogLevel sets the minimum level of records the shared logger emits.
func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

// SetRawLogLevel parses names like "debug" or "warn".  Unknown values map to info.
func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

// ParseLevel maps a level name to a slog.Level, case-insensitively.
// Unknown names map to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
