package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"devotional/internal/domain/entity"
	mockSvc "devotional/internal/mocks/service"
	mockUsecase "devotional/internal/mocks/usecase"
	"devotional/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type jobServiceMocks struct {
	dispatch  *mockUsecase.MockDispatchUsecase
	retention *mockUsecase.MockRetentionUsecase
	publisher *mockSvc.MockReportPublisher
}

func createTestJobService(t *testing.T) (*jobService, jobServiceMocks) {
	mocks := jobServiceMocks{
		dispatch:  mockUsecase.NewMockDispatchUsecase(t),
		retention: mockUsecase.NewMockRetentionUsecase(t),
		publisher: mockSvc.NewMockReportPublisher(t),
	}

	svc := NewJobService(JobServiceParams{
		Logger:    discardLogger(),
		Config:    newTestConfig(),
		Dispatch:  mocks.dispatch,
		Retention: mocks.retention,
		Publisher: mocks.publisher,
	}).(*jobService)

	var clockMu sync.Mutex
	clock := time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		clock = clock.Add(time.Second)

		return clock
	}

	return svc, mocks
}

func TestJobService_RunDispatch(t *testing.T) {
	svc, mocks := createTestJobService(t)
	report := entity.NewDispatchReport(time.Date(2025, 6, 10, 13, 0, 1, 0, time.UTC))
	report.UsersSent = 3

	mocks.dispatch.EXPECT().
		RunDispatch(mock.Anything, time.Date(2025, 6, 10, 13, 0, 1, 0, time.UTC)).
		Return(report, nil).Once()
	mocks.publisher.EXPECT().
		PublishJobRun(mock.Anything, mock.MatchedBy(func(run *entity.JobRun) bool {
			return run.Job == entity.JobDispatch && run.Error == "" && run.Dispatch == report
		})).
		Return(nil).Once()

	run, err := svc.Run(context.Background(), entity.JobDispatch)

	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, entity.JobDispatch, run.Job)
	assert.Equal(t, 3, run.Dispatch.UsersSent)
	assert.Nil(t, run.Retention)
	assert.Equal(t, time.Second, run.Duration())
}

func TestJobService_RunRetentionFailureIsReported(t *testing.T) {
	svc, mocks := createTestJobService(t)
	partial := &entity.RetentionReport{UsersEvicted: 2}

	mocks.retention.EXPECT().
		RunRetention(mock.Anything, mock.Anything).
		Return(partial, errors.New("failed to enumerate users for pruning")).Once()
	mocks.publisher.EXPECT().
		PublishJobRun(mock.Anything, mock.MatchedBy(func(run *entity.JobRun) bool {
			return run.Job == entity.JobRetention && run.Error != ""
		})).
		Return(nil).Once()

	run, err := svc.Run(context.Background(), entity.JobRetention)

	require.Error(t, err)
	require.NotNil(t, run)
	assert.Contains(t, run.Error, "pruning")
	assert.Equal(t, 2, run.Retention.UsersEvicted)
}

func TestJobService_RunAppliesJobTimeout(t *testing.T) {
	svc, mocks := createTestJobService(t)
	svc.cfg.Retention.Timeout = 50 * time.Millisecond

	mocks.retention.EXPECT().
		RunRetention(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ time.Time) (*entity.RetentionReport, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, time.Second)

			return &entity.RetentionReport{}, nil
		}).Once()
	mocks.publisher.EXPECT().PublishJobRun(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.Run(context.Background(), entity.JobRetention)

	require.NoError(t, err)
}

func TestJobService_UnknownJob(t *testing.T) {
	svc, _ := createTestJobService(t)

	run, err := svc.Run(context.Background(), entity.JobName("reindex"))

	assert.ErrorIs(t, err, entity.ErrUnknownJob)
	assert.Nil(t, run)
}

func TestJobService_RejectsConcurrentRunOfSameJob(t *testing.T) {
	svc, mocks := createTestJobService(t)
	started := make(chan struct{})
	release := make(chan struct{})

	mocks.dispatch.EXPECT().
		RunDispatch(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time) (*entity.DispatchReport, error) {
			close(started)
			<-release

			return entity.NewDispatchReport(time.Now()), nil
		}).Once()
	mocks.retention.EXPECT().RunRetention(mock.Anything, mock.Anything).Return(&entity.RetentionReport{}, nil).Once()
	mocks.publisher.EXPECT().PublishJobRun(mock.Anything, mock.Anything).Return(nil).Times(2)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Run(context.Background(), entity.JobDispatch)
		assert.NoError(t, err)
	}()
	<-started

	_, err := svc.Run(context.Background(), entity.JobDispatch)
	assert.ErrorIs(t, err, usecase.ErrJobAlreadyRunning)

	// A different job is not blocked.
	_, err = svc.Run(context.Background(), entity.JobRetention)
	assert.NoError(t, err)

	close(release)
	wg.Wait()
}

func TestJobService_PublishFailureDoesNotFailTheRun(t *testing.T) {
	svc, mocks := createTestJobService(t)

	mocks.dispatch.EXPECT().RunDispatch(mock.Anything, mock.Anything).Return(entity.NewDispatchReport(time.Now()), nil).Once()
	mocks.publisher.EXPECT().PublishJobRun(mock.Anything, mock.Anything).Return(errors.New("topic not found")).Once()

	run, err := svc.Run(context.Background(), entity.JobDispatch)

	require.NoError(t, err)
	assert.Empty(t, run.Error)
}

func TestJobService_PublishesAfterCanceledRun(t *testing.T) {
	svc, mocks := createTestJobService(t)
	ctx, cancel := context.WithCancel(context.Background())

	mocks.dispatch.EXPECT().
		RunDispatch(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time) (*entity.DispatchReport, error) {
			cancel()

			return nil, errors.Wrap(context.Canceled, "failed to enumerate users")
		}).Once()
	mocks.publisher.EXPECT().
		PublishJobRun(mock.Anything, mock.Anything).
		RunAndReturn(func(publishCtx context.Context, _ *entity.JobRun) error {
			return publishCtx.Err()
		}).Once()

	run, err := svc.Run(ctx, entity.JobDispatch)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotEmpty(t, run.Error)
}
