package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// FilteredLevelWriter writes only log messages that are at or above the configured level.
type FilteredLevelWriter struct {
	writer io.Writer
	level  zerolog.Level
}

// Write writes to the underlying writer.
func (w *FilteredLevelWriter) Write(p []byte) (int, error) {
	return w.writer.Write(p)
}

// WriteLevel implements zerolog.LevelWriter.
func (w *FilteredLevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= w.level {
		return w.writer.Write(p)
	}
	return len(p), nil
}
