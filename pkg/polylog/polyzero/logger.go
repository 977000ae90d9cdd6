package polyzero

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ojo-network/contractMonitor/pkg/polylog"
)

var _ polylog.Logger = (*zerologLogger)(nil)

func init() {
	polylog.DefaultContextLogger = NewLogger(WithLevel(InfoLevel))
}

// zerologLogger is a thin wrapper around a zerolog logger which implements
// the polylog.Logger interface.
type zerologLogger struct {
	// NB: Default (0) is Debug.
	level  zerolog.Level
	output io.Writer
	setup  []func(logger *zerolog.Logger)
	zerolog.Logger
}

// NewLogger constructs a new zerolog-backed logger which conforms to the
// polylog.Logger interface. By default, the logger writes to os.Stderr and
// logs at the Debug level.
func NewLogger(opts ...polylog.LoggerOption) polylog.Logger {
	ze := &zerologLogger{
		level:  zerolog.DebugLevel,
		output: os.Stderr,
	}

	for _, opt := range opts {
		opt(ze)
	}

	ze.Logger = zerolog.New(ze.output).Level(ze.level)
	for _, fn := range ze.setup {
		fn(&ze.Logger)
	}

	return ze
}

// Debug starts a new message with debug level.
//
// You must call Msg on the returned event in order to send the event.
func (ze *zerologLogger) Debug() polylog.Event {
	return newEvent(ze.Logger.Debug())
}

// Info starts a new message with info level.
//
// You must call Msg, Msgf, or Send on the returned event in order to send the event.
func (ze *zerologLogger) Info() polylog.Event {
	return newEvent(ze.Logger.Info())
}

// Warn starts a new message with warn level.
//
// You must call Msg, Msgf, or Send on the returned event in order to send the event.
func (ze *zerologLogger) Warn() polylog.Event {
	return newEvent(ze.Logger.Warn())
}

// Error starts a new message with error level.
//
// You must call Msg, Msgf, or Send on the returned event in order to send the event.
func (ze *zerologLogger) Error() polylog.Event {
	return newEvent(ze.Logger.Error())
}

// With creates a child logger with the fields constructed from keyVals added
// to its context.
func (ze *zerologLogger) With(keyVals ...any) polylog.Logger {
	return &zerologLogger{
		level:  ze.level,
		output: ze.output,
		Logger: ze.Logger.With().Fields(keyVals).Logger(),
	}
}

// WithContext returns a copy of ctx with the receiver logger attached, both
// under polylog.CtxKey and zerolog's own context key.
func (ze *zerologLogger) WithContext(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, polylog.CtxKey, ze)
	return ze.Logger.WithContext(ctx)
}
