// Package log defines the structured logging interface used across netgen.
//
// Overview:
//   - Responsibility: Decouple the engine from any concrete logger
//   - Key Types: Logger interface with key-value logging, Nop implementation
//   - Concurrency Model: Implementations must be safe for concurrent use
//   - Error Semantics: Error takes the error as its first parameter
//   - Performance Notes: Key-value pairs are passed through untouched
//
// Usage:
//
//	logger.Info("artifact written", log.Str("path", "src/Shop/Shop.csproj"))
package log

// Logger is a structured logger in the style of slog.
type Logger interface {
	// With returns a Logger that attaches kv to every entry.
	With(kv ...any) Logger

	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, kv ...any)

	// Info logs an informational message with optional key-value pairs.
	Info(msg string, kv ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, kv ...any)

	// Error logs err with a message and optional key-value pairs.
	Error(err error, msg string, kv ...any)
}

// Str creates a string key-value pair.
func Str(k, v string) any {
	return []any{k, v}
}

// Int creates an integer key-value pair.
func Int(k string, v int) any {
	return []any{k, v}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nop{}
}

type nop struct{}

func (n nop) With(...any) Logger        { return n }
func (nop) Debug(string, ...any)        {}
func (nop) Info(string, ...any)         {}
func (nop) Warn(string, ...any)         {}
func (nop) Error(error, string, ...any) {}
