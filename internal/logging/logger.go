// Package logging provides the global file logger. Output goes to a file in
// the config directory so it never draws over the terminal UI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// Logger is the global logger instance. Nil until Init succeeds.
	Logger *log.Logger

	logFile *os.File
)

// Init opens a dated log file under dir/logs at the given level
// (debug, info, warn, error).
func Init(dir, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("snack-%s.log", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	Close()
	logFile = f
	Logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           lvl,
	})
	return nil
}

// Path returns the current log file path, or "" before Init.
func Path() string {
	if logFile == nil {
		return ""
	}
	return logFile.Name()
}

// Close closes the log file.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	Logger = nil
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// WithPrefix returns a logger with a prefix. Safe to call before Init; the
// returned logger then discards everything.
func WithPrefix(prefix string) *log.Logger {
	if Logger != nil {
		return Logger.WithPrefix(prefix)
	}
	return log.NewWithOptions(discard{}, log.Options{Prefix: prefix})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
