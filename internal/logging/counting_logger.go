package logging

import (
	"sync/atomic"

	"github.com/vvka-141/traceschema/pkg/traceschema"
)

// CountingLogger forwards to another logger and counts warnings and errors.
type CountingLogger struct {
	next     traceschema.Logger
	warnings atomic.Int64
	errors   atomic.Int64
}

// NewCountingLogger wraps next. A nil next discards messages.
func NewCountingLogger(next traceschema.Logger) *CountingLogger {
	if next == nil {
		next = NewNullLogger()
	}
	return &CountingLogger{next: next}
}

func (l *CountingLogger) Verbose(format string, args ...interface{}) {
	l.next.Verbose(format, args...)
}

func (l *CountingLogger) Info(format string, args ...interface{}) {
	l.next.Info(format, args...)
}

func (l *CountingLogger) Warn(format string, args ...interface{}) {
	l.warnings.Add(1)
	l.next.Warn(format, args...)
}

func (l *CountingLogger) Error(format string, args ...interface{}) {
	l.errors.Add(1)
	l.next.Error(format, args...)
}

// Warnings returns the number of Warn calls so far.
func (l *CountingLogger) Warnings() int {
	return int(l.warnings.Load())
}

// Errors returns the number of Error calls so far.
func (l *CountingLogger) Errors() int {
	return int(l.errors.Load())
}

// Reset zeroes both counters.
func (l *CountingLogger) Reset() {
	l.warnings.Store(0)
	l.errors.Store(0)
}
