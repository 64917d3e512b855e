package usecase

import (
	"context"
	"time"

	"devotional/internal/domain/entity"
)

// RetentionUsecase defines the daily retention and token-health engine
type RetentionUsecase interface {
	// RunRetention evicts stale users, prunes old tokens and validates the
	// rest with a silent probe, in that order.
	RunRetention(ctx context.Context, now time.Time) (*entity.RetentionReport, error)
}
