// Package logging provides concrete implementations of the extscan.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed, optionally colored messages to stderr
//   - NullLogger: Discards all messages
//   - BufferLogger: Records messages in memory (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
