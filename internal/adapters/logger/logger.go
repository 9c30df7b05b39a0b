// Package logger implements the logging adapter using charmbracelet/log.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"go.trai.ch/footprint/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger on top of a charm logger writing to
// stderr, keeping stdout free for scan results.
type Logger struct {
	logger *log.Logger
}

// New creates a new Logger at info level.
func New() *Logger {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a Logger writing to the given destination.
func NewWithOutput(w io.Writer) *Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
	})
	logger.SetLevel(log.InfoLevel)
	return &Logger{logger: logger}
}

// SetVerbose lowers the level to debug and turns on timestamps.
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.logger.SetLevel(log.DebugLevel)
		l.logger.SetReportTimestamp(true)
		return
	}
	l.logger.SetLevel(log.InfoLevel)
	l.logger.SetReportTimestamp(false)
}

// Debug logs a debug message with key-value context.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.logger.Debug(msg, keyvals...)
}

// Info logs an informational message with key-value context.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.logger.Info(msg, keyvals...)
}

// Warn logs a warning message with key-value context.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.logger.Warn(msg, keyvals...)
}

// Error logs an error message with key-value context.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.logger.Error(msg, keyvals...)
}
