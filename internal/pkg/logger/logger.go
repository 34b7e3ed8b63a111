// Package logger provides the application logger used across all layers.
package logger

// Logger defines the logging interface.
//
// A call with a message followed by key/value pairs, e.g.
// Info("lead stored", "kind", "quote", "id", 7), is emitted as a structured record.
// Any other argument list is concatenated into the message.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
