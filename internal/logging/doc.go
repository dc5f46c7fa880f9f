// Package logging provides concrete implementations of the traceschema.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes leveled messages to a writer through logrus
//   - NullLogger: Discards all messages (useful for testing)
//   - CountingLogger: Forwards to another logger and counts warnings and errors
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
