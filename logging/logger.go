package logging

import (
	"log/slog"
	"os"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel maps a config string to a LogLevel, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LogLevelDebug
	case "warn":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger defines the minimal logging interface for GraphQA. Log calls take
// alternating key/value pairs in slog style. This allows users to provide
// their own logger implementation or use the built-in adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// GraphQALogger is a contextual Logger backed by slog. The With* methods
// return clones carrying pre-bound attributes, so one root logger built at
// startup can be specialized per component or per session without touching
// the shared handler.
type GraphQALogger struct {
	logger *slog.Logger
}

// NewGraphQALogger wraps an existing *slog.Logger. Useful when the caller owns
// the handler (custom outputs, tests).
func NewGraphQALogger(logger *slog.Logger) *GraphQALogger {
	return &GraphQALogger{logger: logger}
}

// NewSlogLogger builds a GraphQALogger writing to stdout with the given level
// and format ("json" or "text").
func NewSlogLogger(level LogLevel, format string) *GraphQALogger {
	opts := &slog.HandlerOptions{Level: slogLevel(level)}
	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return NewGraphQALogger(slog.New(handler))
}

// WithContext returns a clone that attaches the key/value pair to every entry.
func (l *GraphQALogger) WithContext(key string, value any) *GraphQALogger {
	return NewGraphQALogger(l.logger.With(slog.Any(key, value)))
}

// WithComponent returns a clone bound to a logical component (engine,
// pipeline, httpapi, etc.).
func (l *GraphQALogger) WithComponent(c string) *GraphQALogger {
	return NewGraphQALogger(l.logger.With(slog.String("component", c)))
}

// WithSession returns a clone bound to session and run identifiers.
func (l *GraphQALogger) WithSession(sessionID, runID string) *GraphQALogger {
	return NewGraphQALogger(l.logger.With(slog.String("session_id", sessionID), slog.String("run_id", runID)))
}

// Debug logs at debug level.
func (l *GraphQALogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

// Info logs at info level.
func (l *GraphQALogger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

// Warn logs at warn level.
func (l *GraphQALogger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

// Error logs at error level.
func (l *GraphQALogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// LogStage records the outcome of a single pipeline stage on any Logger.
func LogStage(l Logger, stage string, dur time.Duration, err error) {
	if err != nil {
		l.Warn("Stage failed", "stage", stage, "duration", dur, "error", err.Error())
		return
	}
	l.Debug("Stage completed", "stage", stage, "duration", dur)
}

// LogQueryExecution records graph query execution latency and row count.
func LogQueryExecution(l Logger, rows int, dur time.Duration, err error) {
	if err != nil {
		l.Error("Query execution failed", "duration", dur, "error", err.Error())
		return
	}
	l.Debug("Query executed", "rows", rows, "duration", dur)
}

// NoOpLogger discards all log messages. Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}
