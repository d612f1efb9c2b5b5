package common

import (
	"context"
	"fmt"
	"os"
	"time"
)

// SearchLogger provides logging functionality for search operations
type SearchLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger SearchLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) SearchLogger {
	if logger, ok := ctx.Value(loggerKey).(SearchLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
	// Do nothing
}

// StderrLogger writes log lines to standard error. Installed by the CLI so
// search internals stay decoupled from the output stream.
type StderrLogger struct {
	// MinLevel suppresses lines below the given level when set ("DEBUG" <
	// "INFO" < "WARN" < "ERROR").
	MinLevel string
}

var levelRank = map[string]int{"DEBUG": 0, "INFO": 1, "WARN": 2, "ERROR": 3}

// Log writes a timestamped line with optional key=value metadata.
func (l *StderrLogger) Log(level, message string, metadata map[string]interface{}) {
	if l.MinLevel != "" && levelRank[level] < levelRank[l.MinLevel] {
		return
	}
	fmt.Fprintf(os.Stderr, "%s [%s] %s", time.Now().UTC().Format(time.RFC3339), level, message)
	for k, v := range metadata {
		fmt.Fprintf(os.Stderr, " %s=%v", k, v)
	}
	fmt.Fprintln(os.Stderr)
}
