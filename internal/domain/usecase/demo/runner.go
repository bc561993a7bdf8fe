package demo

import (
	"context"

	coreport "github.com/amirhossein-jamali/logging-demo/internal/domain/port/core"
	"github.com/amirhossein-jamali/logging-demo/internal/domain/port/usecase"
)

// Runner walks through the logging API one call at a time
type Runner struct {
	logger coreport.Logger
}

// NewRunner creates a new demo runner writing to logger
func NewRunner(logger coreport.Logger) usecase.DemoUseCase {
	return &Runner{
		logger: logger,
	}
}

// Run emits one record per level and then divides by zero under Catch.
// Which records reach a sink is decided by the sink's minimum level.
func (r *Runner) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.logger.Info("This is a info log", nil)
	r.logger.Debug("This is a debug log", nil)
	r.logger.Error("This is a error log", nil)
	r.logger.Warn("This is a warning log", nil)
	r.logger.Critical("This is a critical log", nil)
	r.logger.Success("This is a success log", nil)
	// No error is being handled here, so this writes nothing.
	r.logger.Exception("This is a exception log", nil, nil)

	r.Divide(1, 0)
	return nil
}

// Divide is the guarded form of the package level Divide
func (r *Runner) Divide(x, y float64) (float64, bool) {
	res := Catch(r.logger, "Divide", func() (float64, error) {
		return Divide(x, y)
	})
	return res.Value, res.OK()
}
