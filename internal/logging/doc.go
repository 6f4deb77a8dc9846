// Package logging provides concrete implementations of the spvc.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed messages to stderr (or any io.Writer)
//   - NullLogger: Discards all messages (useful for testing)
//
// Diagnostics only. The compilation report is written to stdout by the
// report package and never passes through a Logger.
package logging
