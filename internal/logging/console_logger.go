package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ConsoleLogger writes log messages through a logrus logger.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	log *logrus.Logger
}

// NewWriterLogger creates a ConsoleLogger writing to w, usually the
// command's stderr. If verbose is false, Verbose() calls are no-ops.
func NewWriterLogger(w io.Writer, verbose bool) *ConsoleLogger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return &ConsoleLogger{log: log}
}

// NewLogrusLogger adapts an existing logrus logger.
func NewLogrusLogger(log *logrus.Logger) *ConsoleLogger {
	return &ConsoleLogger{log: log}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Warn logs recoverable problems.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}
