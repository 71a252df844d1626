package logger

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	// Default logger instance
	logger *log.Logger

	// Initialize logger once
	initLoggerOnce sync.Once
)

// InitLogger initializes the default logger. Output goes to stderr so the
// stdio MCP transport keeps stdout to itself.
func InitLogger() {
	initLoggerOnce.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix:          "monday-mcp",
			ReportTimestamp: true,
		})
		logger.SetLevel(log.InfoLevel)
	})
}

// ensureInitialized ensures the logger is initialized before use
func ensureInitialized() {
	InitLogger()
}

// Configure applies a level name (debug, info, warn, error) and a format
// name (text, json, logfmt) to the default logger.
func Configure(level, format string) error {
	ensureInitialized()

	if level != "" {
		lvl, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		logger.SetLevel(lvl)
	}

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(log.TextFormatter)
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		return fmt.Errorf("invalid log format %q: expected text, json or logfmt", format)
	}
	return nil
}

// Info logs an info message
func Info(msg string, keyvals ...any) {
	ensureInitialized()
	logger.Info(msg, keyvals...)
}

// Debug logs a debug message
func Debug(msg string, keyvals ...any) {
	ensureInitialized()
	logger.Debug(msg, keyvals...)
}

// Error logs an error message
func Error(msg string, keyvals ...any) {
	ensureInitialized()
	logger.Error(msg, keyvals...)
}

// Warn logs a warning message
func Warn(msg string, keyvals ...any) {
	ensureInitialized()
	logger.Warn(msg, keyvals...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, keyvals ...any) {
	ensureInitialized()
	logger.Fatal(msg, keyvals...)
}

// With returns a new logger with additional context
func With(keyvals ...any) *log.Logger {
	ensureInitialized()
	return logger.With(keyvals...)
}

// StandardLog adapts the default logger for libraries that take a *log.Logger
func StandardLog() *stdlog.Logger {
	ensureInitialized()
	return logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel})
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	ensureInitialized()
	logger.SetOutput(w)
}

// Disable completely disables logging output
func Disable() {
	SetOutput(io.Discard)
}

// Enable re-enables logging output to stderr
func Enable() {
	SetOutput(os.Stderr)
}
