package wrap

import (
	"context"
	"errors"
)

// ctxError carries the LogCtx that was current where the error was raised,
// so the caller that finally logs it still sees the original action and site.
type ctxError struct {
	err    error
	logCtx LogCtx
}

func (e *ctxError) Error() string { return e.err.Error() }

func (e *ctxError) Unwrap() error { return e.err }

// Error attaches the LogCtx of ctx to err. An error that already carries one
// has it replaced.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var e *ctxError
	if errors.As(err, &e) {
		if lc, ok := ctx.Value(LogCtxKey).(LogCtx); ok {
			e.logCtx = lc
		}
		return err
	}

	return &ctxError{err: err, logCtx: FromContext(ctx)}
}

// ErrorCtx returns ctx with the LogCtx carried by err, if any.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var e *ctxError
	if errors.As(err, &e) && e != nil {
		return context.WithValue(ctx, LogCtxKey, e.logCtx)
	}
	return ctx
}
