package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every console log line.
const Prefix = "scormpack"

// ConsoleLogger writes leveled log messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	logger *log.Logger
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
// If verbose is true, Verbose() calls will produce output.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerTo(os.Stderr, verbose)
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to w.
func NewConsoleLoggerTo(w io.Writer, verbose bool) *ConsoleLogger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return &ConsoleLogger{
		logger: log.NewWithOptions(w, log.Options{
			Prefix: Prefix,
			Level:  level,
		}),
	}
}

// Verbose logs detailed diagnostic information at debug level.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}
