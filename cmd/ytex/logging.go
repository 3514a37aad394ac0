package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/vidfetch/ytex/client"
)

// slogLogger adapts log/slog to the client's Logger interface. Every log
// line of one invocation carries the same trace ID.
type slogLogger struct {
	logger *slog.Logger
}

func newSlogLogger(verbose bool, traceID string) client.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &slogLogger{
		logger: slog.New(handler).With(slog.String("trace_id", traceID)),
	}
}

func (l *slogLogger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *slogLogger) Warnf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}
