package usecase

import (
	"context"

	"devotional/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrJobAlreadyRunning is returned when the same job is already in flight in this process.
var ErrJobAlreadyRunning = errors.New("job already running")

// JobUsecase runs scheduled jobs on behalf of external triggers
type JobUsecase interface {
	// Run executes job under its configured deadline and publishes the run report.
	// The returned run is non-nil whenever the job started, even on failure.
	Run(ctx context.Context, job entity.JobName) (*entity.JobRun, error)
}
