package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON-structured logger for the given component.
func New(component string) *slog.Logger {
	l := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return l.With("component", component)
}

// Default is the default engine logger.
var Default = New("engine")
