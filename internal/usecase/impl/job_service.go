package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"devotional/config"
	"devotional/internal/domain/entity"
	"devotional/internal/domain/lifecycle"
	"devotional/internal/domain/service"
	"devotional/internal/usecase"
	"devotional/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type jobService struct {
	logger    *slog.Logger
	cfg       *config.Config
	dispatch  usecase.DispatchUsecase
	retention usecase.RetentionUsecase
	publisher service.ReportPublisher
	now       func() time.Time

	mu      sync.Mutex
	running map[entity.JobName]bool
}

// JobServiceParams holds dependencies for the job runner
type JobServiceParams struct {
	fx.In

	Logger    *slog.Logger
	Config    *config.Config
	Dispatch  usecase.DispatchUsecase
	Retention usecase.RetentionUsecase
	Publisher service.ReportPublisher
}

// NewJobService creates a new job runner
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		logger:    params.Logger,
		cfg:       params.Config,
		dispatch:  params.Dispatch,
		retention: params.Retention,
		publisher: params.Publisher,
		now:       time.Now,
		running:   make(map[entity.JobName]bool),
	}
}

// Run executes one job. A second Run of the same job while the first is still
// in flight is rejected with ErrJobAlreadyRunning.
func (s *jobService) Run(ctx context.Context, job entity.JobName) (*entity.JobRun, error) {
	if _, err := entity.ParseJobName(string(job)); err != nil {
		return nil, err
	}

	if !s.acquire(job) {
		return nil, errors.Wrapf(usecase.ErrJobAlreadyRunning, "%s", job)
	}
	defer s.release(job)

	run := &entity.JobRun{
		ID:        uuid.NewString(),
		Job:       job,
		StartedAt: s.now().UTC(),
	}
	logger := s.logger.With(slog.String("run_id", run.ID), slog.String("job", string(job)))
	logger.Info("[Job] Run started")

	err := s.execute(ctx, run)

	run.FinishedAt = s.now().UTC()
	if err != nil {
		run.Error = err.Error()
		logger.Error("[Job] Run failed",
			slog.String("duration", util.FormatDuration(run.Duration())),
			slog.Any("error", err),
		)
	} else {
		logger.Info("[Job] Run finished", slog.String("duration", util.FormatDuration(run.Duration())))
	}

	// The run's own deadline may have expired; the report still goes out.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()
	if pubErr := s.publisher.PublishJobRun(publishCtx, run); pubErr != nil {
		logger.Warn("[Job] Failed to publish run report", slog.Any("error", pubErr))
	}

	return run, err
}

func (s *jobService) execute(ctx context.Context, run *entity.JobRun) error {
	switch run.Job {
	case entity.JobDispatch:
		runCtx, cancel := withDeadline(ctx, s.cfg.Dispatch.Timeout)
		defer cancel()

		report, err := s.dispatch.RunDispatch(runCtx, run.StartedAt)
		run.Dispatch = report

		return err

	case entity.JobRetention:
		runCtx, cancel := withDeadline(ctx, s.cfg.Retention.Timeout)
		defer cancel()

		report, err := s.retention.RunRetention(runCtx, run.StartedAt)
		run.Retention = report

		return err

	default:
		return errors.Wrapf(entity.ErrUnknownJob, "%q", run.Job)
	}
}

// withDeadline bounds ctx by timeout; a zero timeout leaves it unbounded.
func withDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}

func (s *jobService) acquire(job entity.JobName) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running[job] {
		return false
	}
	s.running[job] = true

	return true
}

func (s *jobService) release(job entity.JobName) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.running, job)
}
