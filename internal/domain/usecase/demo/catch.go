package demo

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"

	errs "github.com/amirhossein-jamali/logging-demo/internal/domain/error"
	coreport "github.com/amirhossein-jamali/logging-demo/internal/domain/port/core"
)

// Result is the outcome of a guarded call.
// A non-nil Err has already been logged and must not be logged again.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the guarded call succeeded
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Catch runs fn and logs the error it returns, or the panic it raises, at
// critical level together with its type and traceback. Neither escapes to
// the caller; the outcome is only visible through the Result.
func Catch[T any](logger coreport.Logger, function string, fn func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			err := pkgerrors.WithStack(&errs.PanicError{Value: r})
			logCaught(logger, function, err)
			res = Result[T]{Err: err}
		}
	}()

	value, err := fn()
	if err != nil {
		if errs.Traceback(err) == "" {
			err = pkgerrors.WithStack(err)
		}
		logCaught(logger, function, err)
		return Result[T]{Err: err}
	}
	return Result[T]{Value: value}
}

func logCaught(logger coreport.Logger, function string, err error) {
	fields := errs.ExceptionFields(err)
	fields[coreport.FieldFunction] = function
	logger.Log(
		coreport.LogLevelCritical,
		fmt.Sprintf("An error has been caught in function '%s'", function),
		fields,
	)
}
