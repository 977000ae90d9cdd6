package polyzero

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/ojo-network/contractMonitor/pkg/polylog"
)

// WithOutput sets the writer the logger emits to. Defaults to os.Stderr.
func WithOutput(output io.Writer) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).output = output
	}
}

// WithLevel sets the minimum level which the logger will emit.
func WithLevel(level polylog.Level) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).level = zerolog.Level(level.Int())
	}
}

// WithSetupFn registers fn to be called on the underlying zerolog logger
// once it has been constructed (e.g. to add a timestamp hook).
func WithSetupFn(fn func(logger *zerolog.Logger)) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		ze := logger.(*zerologLogger)
		ze.setup = append(ze.setup, fn)
	}
}
