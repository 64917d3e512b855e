package usecase

import (
	"context"
	"time"

	"devotional/internal/domain/entity"
)

// DispatchUsecase defines the hourly daily-devotional evaluator
type DispatchUsecase interface {
	// RunDispatch evaluates every user at now and sends at most one push per
	// eligible user. Only a failure to enumerate users is returned; per-user
	// problems are recorded in the report.
	RunDispatch(ctx context.Context, now time.Time) (*entity.DispatchReport, error)
}
