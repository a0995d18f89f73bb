// Package logging provides structured logging for boredom-mcp.
//
// Logs are written with log/slog to stderr. On the stdio transport stdout
// carries JSON-RPC frames, so nothing in this package ever writes there.
//
// Configuration via environment variables:
//   - BOREDOM_MCP_LOG_LEVEL: DEBUG, INFO, WARN, ERROR (default: WARN)
//   - BOREDOM_MCP_LOG_FORMAT: text, json (default: text)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Environment variable names for logging configuration.
const (
	LogLevelEnvVar  = "BOREDOM_MCP_LOG_LEVEL"
	LogFormatEnvVar = "BOREDOM_MCP_LOG_FORMAT"
)

// Default logging configuration.
const (
	DefaultLevel  = slog.LevelWarn
	DefaultFormat = "text"
)

// ComponentKey is the attribute that names the subsystem emitting a record.
const ComponentKey = "component"

// Logger is the logging surface used across the server, fetchers and CLI.
type Logger interface {
	// Debug logs a message at DEBUG level with optional key-value pairs.
	// Successful provider fetches are logged here.
	Debug(msg string, args ...any)

	// Info logs a message at INFO level with optional key-value pairs.
	Info(msg string, args ...any)

	// Warn logs a message at WARN level with optional key-value pairs.
	// Failed provider fetches are logged here, so they show by default.
	Warn(msg string, args ...any)

	// Error logs a message at ERROR level with optional key-value pairs.
	Error(msg string, args ...any)

	// With returns a Logger that adds args to every record.
	With(args ...any) Logger
}

// logger implements Logger on top of slog.
type logger struct {
	slog *slog.Logger
}

// Debug logs a message at DEBUG level.
func (l *logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs a message at INFO level.
func (l *logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a message at WARN level.
func (l *logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs a message at ERROR level.
func (l *logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// With returns a Logger with args attached to every record.
func (l *logger) With(args ...any) Logger {
	return &logger{slog: l.slog.With(args...)}
}

// Component tags l with the subsystem name, falling back to Default when l
// is nil.
func Component(l Logger, name string) Logger {
	if l == nil {
		l = Default()
	}
	return l.With(ComponentKey, name)
}

var (
	defaultLogger Logger
	once          sync.Once
)

// Default returns the process logger, built from the environment on first use.
func Default() Logger {
	once.Do(func() {
		if defaultLogger == nil {
			defaultLogger = NewFromEnv()
		}
	})
	return defaultLogger
}

// SetDefault replaces the process logger. Call it before the server starts.
func SetDefault(l Logger) {
	once.Do(func() {})
	defaultLogger = l
}

// NewFromEnv creates a stderr Logger configured from environment variables.
func NewFromEnv() Logger {
	format := os.Getenv(LogFormatEnvVar)
	if format == "" {
		format = DefaultFormat
	}
	return New(os.Stderr, ParseLevel(os.Getenv(LogLevelEnvVar)), format)
}

// New creates a Logger writing to w at the given level.
// Format is "json" or "text"; anything else falls back to text.
func New(w io.Writer, level slog.Level, format string) Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &logger{slog: slog.New(handler)}
}

// ParseLevel parses DEBUG, INFO, WARN/WARNING or ERROR (case-insensitive).
// Empty or unknown values yield DefaultLevel.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return DefaultLevel
	}
}

// nopLogger discards every record.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (n nopLogger) With(...any) Logger { return n }

// Nop returns a logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}
