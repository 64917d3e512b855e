// Package pubsub publishes job run reports to Google Pub/Sub or, in
// development, to a local HTTP endpoint shaped like a Pub/Sub push.
package pubsub

import (
	"context"
	"log/slog"

	"devotional/config"
	"devotional/internal/domain/constants"
	"devotional/internal/domain/entity"
	"devotional/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishJobRun(_ context.Context, run *entity.JobRun) error {
	p.logger.Debug("[NoopPubSub] Report publishing disabled, skipping",
		slog.String("run_id", run.ID),
		slog.String("job", string(run.Job)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for ReportPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewReportPublisher creates a ReportPublisher based on configuration
func NewReportPublisher(params PublisherParams) (service.ReportPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, run reports are only logged")

		return &noopPublisher{logger: logger}, nil
	}

	var (
		publisher service.ReportPublisher
		err       error
	)

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for run reports",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for run reports",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing ReportPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// reportAttributes are the Pub/Sub attributes subscribers can filter on
func reportAttributes(run *entity.JobRun) map[string]string {
	status := "ok"
	if run.Error != "" {
		status = "failed"
	}

	return map[string]string{
		"run_id": run.ID,
		"job":    string(run.Job),
		"status": status,
	}
}
