package postgres

import (
	"context"
	"time"

	"devotional/internal/domain/entity"
	"devotional/internal/domain/repository"
	"devotional/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// FindSettings retrieves the settings row of a user.
func (repo *settingsRepository) FindSettings(ctx context.Context, userID string) (*entity.NotificationSettings, error) {
	var settingsM model.NotificationSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// UpdateLastSent sets last_sent_at without touching any other column.
func (repo *settingsRepository) UpdateLastSent(ctx context.Context, userID string, sentAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationSettingsModel{}).
		Where("user_id = ?", userID).
		Update("last_sent_at", sentAt.UTC())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last sent")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSettingsNotFound
	}

	return nil
}

func toSettingsDomain(settingsM *model.NotificationSettingsModel) *entity.NotificationSettings {
	return &entity.NotificationSettings{
		UserID:            settingsM.UserID,
		Enabled:           settingsM.Enabled,
		NotificationTime:  settingsM.NotificationTime,
		Timezone:          settingsM.Timezone,
		PreferredLanguage: settingsM.PreferredLanguage,
		LastSentAt:        settingsM.LastSentAt,
		UpdatedAt:         settingsM.UpdatedAt,
	}
}
