package logger

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger for structured logging. Same method
// surface as before this rework (New, WithTag, WithTags, level
// methods, *Ctx variants); the teacher's go.mod always listed
// github.com/rs/zerolog as a dependency without ever importing it,
// logging through log/slog instead. This wires zerolog in for real.
type Logger struct {
	zerolog.Logger
}

// New creates a new logger instance with JSON output to stderr.
func New() *Logger {
	zl := zerolog.New(os.Stderr).Level(getLogLevel()).With().Timestamp().Logger()
	return &Logger{zl}
}

// getLogLevel reads the LOG_LEVEL environment variable.
func getLogLevel() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithTag returns a new logger with a tag field attached.
func (l *Logger) WithTag(tag string) *Logger {
	return &Logger{l.Logger.With().Str("tag", tag).Logger()}
}

// WithTags returns a new logger with multiple fields attached.
func (l *Logger) WithTags(tags map[string]string) *Logger {
	ctx := l.Logger.With()
	for k, v := range tags {
		ctx = ctx.Str(k, v)
	}
	return &Logger{ctx.Logger()}
}

// Info logs an info level message with key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	withFields(l.Logger.Info(), args).Msg(msg)
}

// Warn logs a warning level message with key/value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	withFields(l.Logger.Warn(), args).Msg(msg)
}

// Error logs an error level message with key/value pairs.
func (l *Logger) Error(msg string, args ...any) {
	withFields(l.Logger.Error(), args).Msg(msg)
}

// Debug logs a debug level message with key/value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	withFields(l.Logger.Debug(), args).Msg(msg)
}

// InfoCtx logs an info level message, attaching ctx for deadline/
// request-scoped field propagation via zerolog's hooks.
func (l *Logger) InfoCtx(ctx context.Context, msg string, args ...any) {
	withFields(l.Logger.Info().Ctx(ctx), args).Msg(msg)
}

// WarnCtx logs a warning level message with context.
func (l *Logger) WarnCtx(ctx context.Context, msg string, args ...any) {
	withFields(l.Logger.Warn().Ctx(ctx), args).Msg(msg)
}

// ErrorCtx logs an error level message with context.
func (l *Logger) ErrorCtx(ctx context.Context, msg string, args ...any) {
	withFields(l.Logger.Error().Ctx(ctx), args).Msg(msg)
}

// DebugCtx logs a debug level message with context.
func (l *Logger) DebugCtx(ctx context.Context, msg string, args ...any) {
	withFields(l.Logger.Debug().Ctx(ctx), args).Msg(msg)
}

// withFields applies alternating key/value pairs to an in-flight
// zerolog event, mirroring slog's args... convention so call sites
// didn't need to change when this rework swapped logging libraries.
func withFields(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, args[i+1])
	}
	return e
}
