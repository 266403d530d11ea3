package logging

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger so that the rest of the codebase is not tied
// to the logging backend directly.
type Logger struct {
	underlying zerolog.Logger
}

// FromZerolog returns a Logger backed by the given zerolog.Logger
func FromZerolog(l zerolog.Logger) *Logger {
	return &Logger{underlying: l}
}

// Debug logs a message at level Debug.
func (l *Logger) Debug(args ...any) {
	l.underlying.Debug().Msg(fmt.Sprint(args...))
}

// Info logs a message at level Info.
func (l *Logger) Info(args ...any) {
	l.underlying.Info().Msg(fmt.Sprint(args...))
}

// Warn logs a message at level Warn.
func (l *Logger) Warn(args ...any) {
	l.underlying.Warn().Msg(fmt.Sprint(args...))
}

// Error logs a message at level Error.
func (l *Logger) Error(args ...any) {
	l.underlying.Error().Msg(fmt.Sprint(args...))
}

// Panic logs a message at level Panic and then panics.
func (l *Logger) Panic(args ...any) {
	l.underlying.Panic().Msg(fmt.Sprint(args...))
}

// Fatal logs a message at level Fatal and then exits with status set to 1.
func (l *Logger) Fatal(args ...any) {
	l.underlying.Fatal().Msg(fmt.Sprint(args...))
}

// Debugf logs a formatted message at level Debug.
func (l *Logger) Debugf(format string, args ...any) {
	l.underlying.Debug().Msgf(format, args...)
}

// Infof logs a formatted message at level Info.
func (l *Logger) Infof(format string, args ...any) {
	l.underlying.Info().Msgf(format, args...)
}

// Warnf logs a formatted message at level Warn.
func (l *Logger) Warnf(format string, args ...any) {
	l.underlying.Warn().Msgf(format, args...)
}

// Errorf logs a formatted message at level Error.
func (l *Logger) Errorf(format string, args ...any) {
	l.underlying.Error().Msgf(format, args...)
}

// Fatalf logs a formatted message at level Fatal and then exits with status set to 1.
func (l *Logger) Fatalf(format string, args ...any) {
	l.underlying.Fatal().Msgf(format, args...)
}

// WithField returns a new Logger with the key-value pair added as a new field
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{underlying: l.underlying.With().Interface(key, value).Logger()}
}

// WithFields returns a new Logger with all key-value pairs in the map added as new fields
func (l *Logger) WithFields(args map[string]any) *Logger {
	return &Logger{underlying: l.underlying.With().Fields(args).Logger()}
}

// WithError returns a new Logger with the error added as a field
func (l *Logger) WithError(err error) *Logger {
	return &Logger{underlying: l.underlying.With().AnErr("error", err).Logger()}
}

// WithStacktrace returns a new Logger with the error and, if available, its
// stacktrace added as fields
func (l *Logger) WithStacktrace(err error) *Logger {
	logger := l.WithError(err)
	if stack := ExtractStack(err); stack != nil {
		return &Logger{underlying: logger.underlying.With().Str(Stacktrace, fmt.Sprintf("%+v", stack)).Logger()}
	}
	return logger
}
