package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrDivisionByZero.Error() != "division by zero" {
		t.Errorf("ErrDivisionByZero has unexpected message: %s", ErrDivisionByZero.Error())
	}
	if ErrInvalidLogLevel.Error() != "invalid log level" {
		t.Errorf("ErrInvalidLogLevel has unexpected message: %s", ErrInvalidLogLevel.Error())
	}
}

func TestArithmeticError(t *testing.T) {
	err := NewDivisionByZeroError("Divide", 1, 0)

	expectedErrMsg := "Divide(1, 0): division by zero"
	if err.Error() != expectedErrMsg {
		t.Errorf("ArithmeticError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("errors.Is(err, ErrDivisionByZero) = false, want true")
	}

	var arithErr *ArithmeticError
	if !errors.As(err, &arithErr) {
		t.Fatalf("errors.As(err, *ArithmeticError) = false, want true")
	}
	fields := arithErr.LogFields()
	if fields["op"] != "Divide" || fields["x"] != float64(1) || fields["y"] != float64(0) {
		t.Errorf("unexpected LogFields: %v", fields)
	}
}

func TestTypeName(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"Nil", nil, ""},
		{"DivisionByZero", NewDivisionByZeroError("Divide", 1, 0), TypeZeroDivision},
		{"WrappedDivisionByZero", fmt.Errorf("wrapped: %w", ErrDivisionByZero), TypeZeroDivision},
		{"RuntimeDivide", recoverError(func() { divideInts(1, 0) }), TypeZeroDivision},
		{"RuntimeIndex", recoverError(func() { indexInts(nil, 1) }), TypeRuntime},
		{"Panic", &PanicError{Value: "boom"}, TypePanic},
		{"Plain", errors.New("plain"), "errors.errorString"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypeName(tc.err); got != tc.expected {
				t.Errorf("TypeName(%v) = %q, want %q", tc.err, got, tc.expected)
			}
		})
	}
}

func TestPanicError(t *testing.T) {
	plain := &PanicError{Value: "boom"}
	if plain.Error() != "panic: boom" {
		t.Errorf("PanicError.Error() = %s, want panic: boom", plain.Error())
	}
	if plain.Unwrap() != nil {
		t.Errorf("PanicError.Unwrap() = %v, want nil", plain.Unwrap())
	}

	inner := errors.New("inner")
	wrapped := &PanicError{Value: inner}
	if !errors.Is(wrapped, inner) {
		t.Errorf("errors.Is(wrapped, inner) = false, want true")
	}
	if !errors.Is(wrapped, ErrPanic) {
		t.Errorf("errors.Is(wrapped, ErrPanic) = false, want true")
	}
}

func TestTraceback(t *testing.T) {
	if tb := Traceback(errors.New("no stack")); tb != "" {
		t.Errorf("Traceback without stack = %q, want empty", tb)
	}

	tb := Traceback(pkgerrors.WithStack(ErrDivisionByZero))
	if tb == "" {
		t.Fatal("Traceback with stack is empty")
	}
	if !strings.Contains(tb, "TestTraceback") {
		t.Errorf("Traceback does not mention the calling test:\n%s", tb)
	}
}

func TestExceptionFields(t *testing.T) {
	if fields := ExceptionFields(nil); fields != nil {
		t.Errorf("ExceptionFields(nil) = %v, want nil", fields)
	}

	err := pkgerrors.WithStack(NewDivisionByZeroError("Divide", 1, 0))
	fields := ExceptionFields(err)

	if fields[KeyErrorType] != TypeZeroDivision {
		t.Errorf("error_type = %v, want %s", fields[KeyErrorType], TypeZeroDivision)
	}
	if fields[KeyError] != "Divide(1, 0): division by zero" {
		t.Errorf("error = %v", fields[KeyError])
	}
	if tb, _ := fields[KeyTraceback].(string); tb == "" {
		t.Errorf("traceback missing from %v", fields)
	}
	if fields["op"] != "Divide" {
		t.Errorf("LogFields of the wrapped error were not merged: %v", fields)
	}
}

func divideInts(x, y int) int {
	return x / y
}

func indexInts(s []int, i int) int {
	return s[i]
}

func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}
