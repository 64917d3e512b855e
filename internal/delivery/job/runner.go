// Package job runs a single named job and stops the application afterwards.
package job

import (
	"context"
	"log/slog"

	"devotional/internal/delivery"
	"devotional/internal/domain/entity"
	"devotional/internal/usecase"
	"devotional/internal/util"

	"go.uber.org/fx"
)

// ExitCodeFailed is the process exit code of a failed run.
const ExitCodeFailed = 1

type runner struct {
	job        entity.JobName
	jobs       usecase.JobUsecase
	shutdowner fx.Shutdowner
	logger     *slog.Logger
}

// RunnerParams holds dependencies for the one-shot runner
type RunnerParams struct {
	fx.In

	Job        entity.JobName
	Jobs       usecase.JobUsecase
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
}

// NewRunner creates a delivery that runs Job once
func NewRunner(params RunnerParams) delivery.Delivery {
	return &runner{
		job:        params.Job,
		jobs:       params.Jobs,
		shutdowner: params.Shutdowner,
		logger:     params.Logger,
	}
}

// Serve runs the job, logs the report and asks fx to shut down with an exit
// code reflecting the outcome.
func (r *runner) Serve(ctx context.Context) error {
	run, err := r.jobs.Run(ctx, r.job)

	exitCode := 0
	if err != nil {
		exitCode = ExitCodeFailed
		r.logger.Error("[Job] One-shot run failed", slog.String("job", string(r.job)), slog.Any("error", err))
	}
	if run != nil {
		r.logReport(run)
	}

	return r.shutdowner.Shutdown(fx.ExitCode(exitCode))
}

func (r *runner) logReport(run *entity.JobRun) {
	attrs := []any{
		slog.String("run_id", run.ID),
		slog.String("job", string(run.Job)),
		slog.String("duration", util.FormatDuration(run.Duration())),
	}

	switch {
	case run.Dispatch != nil:
		attrs = append(attrs, slog.Any("dispatch", run.Dispatch))
	case run.Retention != nil:
		attrs = append(attrs, slog.Any("retention", run.Retention))
	}

	r.logger.Info("[Job] Report", attrs...)
}
