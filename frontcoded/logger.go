package frontcoded

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with frontcoded-specific defaults. Builder and
// the persistence package accept one via WithLogger; it is never
// consulted on the Get/Cursor.Next hot path, only during construction,
// rebuild and load.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps an existing slog.Handler. A nil handler falls back to a
// text handler on stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))}
}
