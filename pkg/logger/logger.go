package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"pdf-summarizer/internal/domain"

	"github.com/rs/zerolog"
)

// AppLogger implements the domain.Logger interface on top of zerolog
type AppLogger struct {
	logger zerolog.Logger
}

// NewLogger creates a JSON logger writing to stdout
func NewLogger(levelStr string) domain.Logger {
	return NewWithWriter(os.Stdout, levelStr, "json")
}

// NewWithFormat creates a logger writing to stdout in the given format ("json" or "console")
func NewWithFormat(levelStr, format string) domain.Logger {
	return NewWithWriter(os.Stdout, levelStr, format)
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(w io.Writer, levelStr, format string) domain.Logger {
	if strings.EqualFold(format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	zl := zerolog.New(w).
		Level(parseLogLevel(levelStr)).
		With().
		Timestamp().
		Logger()

	return &AppLogger{logger: zl}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.logger.Info().Fields(normalize(fields)).Msg(msg)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	l.logger.Error().Err(err).Fields(normalize(fields)).Msg(msg)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.logger.Debug().Fields(normalize(fields)).Msg(msg)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.logger.Warn().Fields(normalize(fields)).Msg(msg)
}

// normalize drops a trailing key without a value so zerolog keeps the pairs aligned.
func normalize(fields []interface{}) []interface{} {
	if len(fields)%2 != 0 {
		return fields[:len(fields)-1]
	}
	return fields
}

// parseLogLevel converts string log level to a zerolog level
func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NopLogger discards everything. Useful for tests and for optional loggers.
type NopLogger struct{}

// NewNop returns a logger that discards all output
func NewNop() domain.Logger {
	return NopLogger{}
}

func (NopLogger) Info(msg string, fields ...interface{})             {}
func (NopLogger) Error(msg string, err error, fields ...interface{}) {}
func (NopLogger) Debug(msg string, fields ...interface{})            {}
func (NopLogger) Warn(msg string, fields ...interface{})             {}
