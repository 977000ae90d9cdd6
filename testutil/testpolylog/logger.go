package testpolylog

import (
	"bytes"
	"context"

	"github.com/ojo-network/contractMonitor/pkg/polylog"
	"github.com/ojo-network/contractMonitor/pkg/polylog/polyzero"
)

// NewLoggerWithCtx returns a debug-level logger attached to ctx.
func NewLoggerWithCtx(
	ctx context.Context,
	level polylog.Level,
) (polylog.Logger, context.Context) {
	logger := polyzero.NewLogger(polyzero.WithLevel(level))
	ctx = logger.WithContext(ctx)

	return logger, ctx
}

// NewBufferedLogger returns a debug-level logger which writes into the
// returned buffer so tests can assert on emitted lines.
func NewBufferedLogger() (polylog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	logger := polyzero.NewLogger(
		polyzero.WithLevel(polyzero.DebugLevel),
		polyzero.WithOutput(buf),
	)
	return logger, buf
}
