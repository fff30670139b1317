// Package logging provides concrete implementations of the scormpack.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: leveled output to stderr through charmbracelet/log
//   - RecordingLogger: keeps messages in memory for assertions in tests
//   - NullLogger: Discards all messages
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
