// Package logging sets up the structured log file. The terminal belongs to
// the TUI, so records go to a file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger wraps a slog.Logger with the file it writes to.
type Logger struct {
	*slog.Logger
	file *os.File
	path string
}

// Open creates (or appends to) the log file at path. An empty path yields a
// logger that discards everything.
func Open(path string, debug bool) (*Logger, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return &Logger{Logger: slog.New(slog.DiscardHandler)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	l := &Logger{
		Logger: newLogger(f, level),
		file:   f,
		path:   path,
	}
	l.Debug("logger initialized", "path", path)
	return l, nil
}

// Path returns the log file path, or "" when logging is discarded.
func (l *Logger) Path() string {
	return l.path
}

// Close flushes and closes the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("pid", os.Getpid())
}
