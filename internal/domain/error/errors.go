package error

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Structured logging keys shared by error log fields
const (
	KeyError     = "error"
	KeyErrorType = "error_type"
	KeyTraceback = "traceback"
)

// Error type labels reported in the error_type field
const (
	TypeZeroDivision = "ZeroDivisionError"
	TypeRuntime      = "RuntimeError"
	TypePanic        = "Panic"
)

// Base error types
var (
	// ErrDivisionByZero is returned when a division has a zero divisor
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidLogLevel is returned when a level name is not recognised
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrSinkNotFound is returned when removing a sink id that is not registered
	ErrSinkNotFound = errors.New("sink not found")

	// ErrInvalidSink is returned when a sink configuration cannot be used
	ErrInvalidSink = errors.New("invalid sink configuration")

	// ErrPanic marks errors recovered from a panic
	ErrPanic = errors.New("panic")
)

// ArithmeticError represents a failed arithmetic operation
type ArithmeticError struct {
	Op  string
	X   float64
	Y   float64
	Err error
}

// Error implements the error interface for ArithmeticError
func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s(%g, %g): %v", e.Op, e.X, e.Y, e.Err)
}

// Unwrap returns the underlying error
func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ArithmeticError) LogFields() map[string]any {
	return map[string]any{
		"op": e.Op,
		"x":  e.X,
		"y":  e.Y,
	}
}

// NewDivisionByZeroError creates an arithmetic error for a zero divisor
func NewDivisionByZeroError(op string, x, y float64) error {
	return &ArithmeticError{
		Op:  op,
		X:   x,
		Y:   y,
		Err: ErrDivisionByZero,
	}
}

// PanicError wraps a value recovered from a panic
type PanicError struct {
	Value any
}

// Error implements the error interface for PanicError
func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the recovered value when it is an error
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Is reports panics as ErrPanic
func (e *PanicError) Is(target error) bool {
	return target == ErrPanic
}

// IsDivisionByZero checks if the error is caused by a zero divisor,
// including the Go runtime's integer division panic
func IsDivisionByZero(err error) bool {
	if errors.Is(err, ErrDivisionByZero) {
		return true
	}
	var rtErr runtime.Error
	return errors.As(err, &rtErr) && strings.Contains(rtErr.Error(), "divide by zero")
}

// TypeName returns the label used in the error_type log field
func TypeName(err error) string {
	if err == nil {
		return ""
	}
	if IsDivisionByZero(err) {
		return TypeZeroDivision
	}
	var rtErr runtime.Error
	if errors.As(err, &rtErr) {
		return TypeRuntime
	}
	if errors.Is(err, ErrPanic) {
		return TypePanic
	}

	root := err
	for {
		next := errors.Unwrap(root)
		if next == nil {
			break
		}
		root = next
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", root), "*")
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Traceback returns the stack trace recorded on err, or "" if none was recorded
func Traceback(err error) string {
	var st stackTracer
	if !errors.As(err, &st) {
		return ""
	}
	return strings.TrimPrefix(fmt.Sprintf("%+v", st.StackTrace()), "\n")
}

// ExceptionFields returns the structured fields describing err
func ExceptionFields(err error) map[string]any {
	if err == nil {
		return nil
	}

	fields := map[string]any{}
	var withFields interface{ LogFields() map[string]any }
	if errors.As(err, &withFields) {
		for k, v := range withFields.LogFields() {
			fields[k] = v
		}
	}

	fields[KeyError] = err.Error()
	fields[KeyErrorType] = TypeName(err)
	if tb := Traceback(err); tb != "" {
		fields[KeyTraceback] = tb
	}
	return fields
}
