// Package logging provides concrete implementations of the zocbuild.Logger
// diagnostic sink.
//
// Available implementations:
//   - ConsoleLogger: Writes severity-prefixed lines to stderr
//   - MemoryLogger: Collects diagnostics for later inspection
//   - NullLogger: Discards all messages
//   - ZapLogger: Forwards diagnostics to a *zap.Logger
//   - Tee: Fans out to several sinks
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
