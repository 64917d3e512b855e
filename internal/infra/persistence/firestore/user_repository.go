package firestore

import (
	"context"

	"devotional/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// ListUserIDs enumerates users/{userId}. DocumentRefs also yields users that
// only exist as parents of subcollections, which the client creates when it
// writes settings before the root document.
func (repo *userRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	refs, err := repo.client.Collection(usersCollection).DocumentRefs(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}

	return ids, nil
}
