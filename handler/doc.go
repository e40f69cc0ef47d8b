// Package handler provides the Handler interface and its built-in
// implementations for dispatching log entries to an output sink.
//
// Every handler carries its own minimum severity threshold: Handle
// silently drops entries below the threshold, and SetLevel changes the
// threshold at runtime without interrupting concurrent emission.
//
// All writes are synchronous and append-mode. Handlers guard their
// sink with a mutex, so a handler shared between several loggers can
// be written to from multiple goroutines.
//
// Built-in handlers:
//
//   - ConsoleHandler writes formatted entries to any io.Writer
//     (default: stdout) with optional ANSI coloring, enabled
//     automatically when the sink is a terminal.
//   - FileHandler appends to a log file, creating parent directories
//     on demand and reopening the file if it was removed out from
//     under it (for example by a log-clearing sweep).
package handler
