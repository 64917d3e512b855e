package handler

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "devotional/internal/delivery/context"
	"devotional/internal/delivery/response"
	"devotional/internal/domain/entity"
	domainerrors "devotional/internal/domain/errors"
	"devotional/internal/errors"
	"devotional/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobHandler runs a job synchronously for direct scheduler triggers
type JobHandler struct {
	logger *slog.Logger
	jobs   usecase.JobUsecase
}

// JobHandlerParams holds dependencies for the JobHandler
type JobHandlerParams struct {
	fx.In

	Logger *slog.Logger
	Jobs   usecase.JobUsecase
}

// NewJobHandler creates a new job trigger handler
func NewJobHandler(params JobHandlerParams) *JobHandler {
	return &JobHandler{
		logger: params.Logger,
		jobs:   params.Jobs,
	}
}

// RunJob handles POST /jobs/:job and responds with the run report
func (h *JobHandler) RunJob(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.LoggerOrDefault(ctx, h.logger)
	name := c.Param("job")

	run, err := runDetached(ctx, h.jobs, name)
	if err != nil {
		logger.Error("[Worker] Job trigger failed", slog.String("job", name), slog.Any("error", err))

		return toAppError(name, err)
	}

	logger.Info("[Worker] Job trigger finished",
		slog.String("job", name),
		slog.String("run_id", run.ID),
	)

	return response.Success(c, http.StatusOK, run)
}

// runDetached runs the job on a context that outlives the trigger request.
// The job's own configured timeout bounds it instead, so a scheduler giving
// up on the HTTP call does not abort a half-finished run.
func runDetached(ctx context.Context, jobs usecase.JobUsecase, name string) (*entity.JobRun, error) {
	return jobs.Run(context.WithoutCancel(ctx), entity.JobName(name))
}

// toAppError maps job runner errors to HTTP application errors
func toAppError(job string, err error) error {
	switch {
	case errors.Is(err, entity.ErrUnknownJob):
		return domainerrors.ErrUnknownJob.WithDetails(job)
	case errors.Is(err, usecase.ErrJobAlreadyRunning):
		return domainerrors.ErrJobAlreadyRunning.WithDetails(job)
	default:
		return domainerrors.ErrJobFailed.WithDetails(err.Error())
	}
}
