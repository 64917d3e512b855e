package repository

import (
	"context"

	"devotional/internal/domain/entity"
)

// TokenRepository reads a user's device tokens.
type TokenRepository interface {
	// FindTokensByUser returns all tokens registered by the user.
	FindTokensByUser(ctx context.Context, userID string) ([]*entity.DeviceToken, error)
}
