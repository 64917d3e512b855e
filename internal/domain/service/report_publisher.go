package service

import (
	"context"

	"devotional/internal/domain/entity"
)

// ReportPublisher defines the interface for publishing job run reports to a message queue
type ReportPublisher interface {
	// PublishJobRun publishes the outcome of a finished job run
	PublishJobRun(ctx context.Context, run *entity.JobRun) error

	// Close releases any resources held by the publisher
	Close() error
}
