// Package logging provides concrete implementations of the fixinsert.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted diagnostics to stderr, keeping stdout for reports
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
