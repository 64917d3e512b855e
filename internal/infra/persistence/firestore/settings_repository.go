package firestore

import (
	"context"
	"time"

	"devotional/internal/domain/entity"
	"devotional/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type settingsRepository struct {
	client *firestore.Client
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(client *firestore.Client) repository.SettingsRepository {
	return &settingsRepository{client: client}
}

// FindSettings reads users/{userId}/settings/notifications.
func (repo *settingsRepository) FindSettings(ctx context.Context, userID string) (*entity.NotificationSettings, error) {
	snap, err := settingsRef(repo.client, userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrapf(err, "failed to get settings for user %s", userID)
	}

	var doc settingsDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode settings for user %s", userID)
	}

	return toSettingsDomain(userID, &doc), nil
}

// UpdateLastSent stores the absolute send instant as a Firestore timestamp.
func (repo *settingsRepository) UpdateLastSent(ctx context.Context, userID string, sentAt time.Time) error {
	_, err := settingsRef(repo.client, userID).Update(ctx, []firestore.Update{
		{Path: fieldLastSentAt, Value: sentAt.UTC()},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrSettingsNotFound
		}

		return errors.Wrapf(err, "failed to update last sent for user %s", userID)
	}

	return nil
}
