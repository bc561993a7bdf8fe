package demo

import (
	pkgerrors "github.com/pkg/errors"

	errs "github.com/amirhossein-jamali/logging-demo/internal/domain/error"
)

// Divide returns x / y, or an ArithmeticError carrying a stack trace when y is zero
func Divide(x, y float64) (float64, error) {
	if y == 0 {
		return 0, pkgerrors.WithStack(errs.NewDivisionByZeroError("Divide", x, y))
	}
	return x / y, nil
}
