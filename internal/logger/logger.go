package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// FileRewritten logs a successful in-place rewrite
func (l *Logger) FileRewritten(file string, doubles, singles int) {
	l.Info("file rewritten",
		"file", file,
		"doubles", doubles,
		"singles", singles)
}

// FileUnchanged logs a file that needed no changes
func (l *Logger) FileUnchanged(file string) {
	l.Debug("file unchanged",
		"file", file)
}

// BackupCreated logs a backup write
func (l *Logger) BackupCreated(file, backup string) {
	l.Debug("backup created",
		"file", file,
		"backup", backup)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}

// RunCompleted logs the end of a batch run
func (l *Logger) RunCompleted(processed, failed int, duration time.Duration) {
	l.Info("run completed",
		"files_processed", processed,
		"failed", failed,
		"duration", duration.Round(time.Millisecond))
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(style string, backup bool) {
	l.Debug("config loaded",
		"style", style,
		"backup", backup)
}
