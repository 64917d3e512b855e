package firestore

import (
	"context"

	"devotional/internal/domain/entity"
	"devotional/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type tokenRepository struct {
	client *firestore.Client
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(client *firestore.Client) repository.TokenRepository {
	return &tokenRepository{client: client}
}

// FindTokensByUser reads users/{userId}/fcmTokens. Documents without a token
// value are ignored.
func (repo *tokenRepository) FindTokensByUser(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	snaps, err := tokensRef(repo.client, userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list tokens for user %s", userID)
	}

	tokens := make([]*entity.DeviceToken, 0, len(snaps))
	for _, snap := range snaps {
		var doc tokenDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode token %s for user %s", snap.Ref.ID, userID)
		}
		if doc.Token == "" {
			continue
		}

		tokens = append(tokens, toTokenDomain(userID, &doc))
	}

	return tokens, nil
}
