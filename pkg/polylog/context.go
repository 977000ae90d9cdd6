package polylog

import "context"

type ctxKey struct{}

// CtxKey is the key used to store the polylog.Logger in a context.Context.
// It is independent of any implementation-specific context key.
var CtxKey = ctxKey{}

// DefaultContextLogger is returned by Ctx when no logger is attached to the
// context. It is assigned in the implementation package's init() to avoid
// import cycles.
var DefaultContextLogger Logger

// Ctx returns the Logger associated with ctx, or DefaultContextLogger if none
// has been attached via Logger#WithContext.
func Ctx(ctx context.Context) Logger {
	logger, ok := ctx.Value(CtxKey).(Logger)
	if !ok {
		return DefaultContextLogger
	}
	return logger
}
