// Package postgres contains the GORM and PostgreSQL implementation of the record store.
package postgres

import (
	"context"

	"devotional/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Users that only own settings or tokens are still part of the population.
const listUserIDsQuery = `
SELECT id FROM users
UNION
SELECT user_id FROM notification_settings
UNION
SELECT user_id FROM device_tokens
ORDER BY 1`

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// ListUserIDs returns every user ID known to any table.
func (repo *userRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	var ids []string

	if err := repo.db.WithContext(ctx).Raw(listUserIDsQuery).Scan(&ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return ids, nil
}
