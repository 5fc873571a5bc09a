package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide JSON logger. Every record carries the
// service attribute so canteen logs stay identifiable in shared streams.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "quickbite"))
}
