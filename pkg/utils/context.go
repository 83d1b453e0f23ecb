package utils

import (
	"context"

	"stocksphere-signal/pkg/logger"
)

// ShouldContinue reports whether the context is still alive, logging when it
// is not so long-running loops exit visibly.
func ShouldContinue(ctx context.Context, log *logger.Logger) bool {
	select {
	case <-ctx.Done():
		log.Info("Context canceled, stopping work", logger.ErrorField(ctx.Err()))
		return false
	default:
		return true
	}
}
