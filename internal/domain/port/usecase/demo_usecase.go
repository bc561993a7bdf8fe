package usecase

import (
	"context"
)

// DemoUseCase exercises every logging operation once
type DemoUseCase interface {
	// Run emits one record per level, then performs a failing guarded division
	Run(ctx context.Context) error
	// Divide returns x / y. A failure is logged at critical level and
	// reported only through the boolean.
	Divide(x, y float64) (float64, bool)
}
