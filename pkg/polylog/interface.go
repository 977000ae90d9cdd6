// Package polylog defines a logging facade whose shape mirrors zerolog's
// chained event API. Implementations live in sub-packages (e.g. polyzero).
package polylog

import (
	"context"
	"time"
)

// Level is the minimum severity at which a Logger emits events.
type Level interface {
	String() string
	Int() int
}

// LoggerOption configures a concrete logger at construction time.
type LoggerOption func(logger Logger)

// Logger is the structured logger interface used throughout the gateway.
type Logger interface {
	Debug() Event
	Info() Event
	Warn() Event
	Error() Event

	// With returns a child logger with the given key/value pairs added to
	// every event it emits. keyVals MUST have an even length.
	With(keyVals ...any) Logger

	// WithContext returns a copy of ctx with the receiver attached, such that
	// Ctx(ctx) returns it.
	WithContext(ctx context.Context) context.Context
}

// Event is a single log line under construction. Nothing is written until
// Msg, Msgf, or Send is called.
type Event interface {
	Str(key, value string) Event
	Bool(key string, value bool) Event
	Int(key string, value int) Event
	Int64(key string, value int64) Event
	Err(err error) Event
	Dur(key string, value time.Duration) Event
	Fields(fields any) Event
	Enabled() bool

	Msg(msg string)
	Msgf(format string, args ...any)
	Send()
}
