package repository

import (
	"context"
	"time"

	"devotional/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSettingsNotFound is returned when a user has no notification settings record.
var ErrSettingsNotFound = errors.New("notification settings not found")

// SettingsRepository reads and updates per-user notification settings.
type SettingsRepository interface {
	// FindSettings returns the user's settings or ErrSettingsNotFound.
	FindSettings(ctx context.Context, userID string) (*entity.NotificationSettings, error)

	// UpdateLastSent stores the dedup marker as an absolute instant.
	UpdateLastSent(ctx context.Context, userID string, sentAt time.Time) error
}
