package postgres

import (
	"context"

	"devotional/internal/domain/entity"
	"devotional/internal/domain/repository"
	"devotional/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// FindTokensByUser retrieves all tokens for a user, oldest first.
func (repo *tokenRepository) FindTokensByUser(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND token <> ''", userID).
		Order("created_at ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tokens by user")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toTokenDomain(tokenM))
	}

	return tokens, nil
}

func toTokenDomain(tokenM *model.DeviceTokenModel) *entity.DeviceToken {
	return &entity.DeviceToken{
		UserID:    tokenM.UserID,
		Token:     tokenM.Token,
		Platform:  tokenM.Platform,
		CreatedAt: tokenM.CreatedAt,
	}
}
