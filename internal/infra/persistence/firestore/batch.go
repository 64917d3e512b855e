package firestore

import (
	"context"

	"devotional/internal/domain/repository"
	"devotional/internal/util"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type batchWriter struct {
	client *firestore.Client
}

// NewBatchWriter is the constructor for batchWriter.
func NewBatchWriter(client *firestore.Client) repository.BatchWriter {
	return &batchWriter{client: client}
}

// NewBatch opens an empty write batch.
func (w *batchWriter) NewBatch() repository.WriteBatch {
	return &writeBatch{client: w.client}
}

type tokenDeletion struct {
	userID string
	tokens []string
}

// writeBatch resolves token values to documents and deletes everything in a
// single transaction, so reads all happen before the first write.
type writeBatch struct {
	client   *firestore.Client
	tokens   []*tokenDeletion
	byUser   map[string]*tokenDeletion
	settings []string
	users    []string
	size     int
}

func (b *writeBatch) DeleteToken(userID, token string) {
	if b.byUser == nil {
		b.byUser = make(map[string]*tokenDeletion)
	}

	deletion, ok := b.byUser[userID]
	if !ok {
		deletion = &tokenDeletion{userID: userID}
		b.byUser[userID] = deletion
		b.tokens = append(b.tokens, deletion)
	}
	deletion.tokens = append(deletion.tokens, token)
	b.size++
}

func (b *writeBatch) DeleteSettings(userID string) {
	b.settings = append(b.settings, userID)
	b.size++
}

func (b *writeBatch) DeleteUser(userID string) {
	b.users = append(b.users, userID)
	b.size++
}

func (b *writeBatch) Len() int {
	return b.size
}

func (b *writeBatch) Commit(ctx context.Context) error {
	if b.size == 0 {
		return nil
	}

	err := b.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var refs []*firestore.DocumentRef
		for _, deletion := range b.tokens {
			for _, chunk := range util.Chunk(deletion.tokens, maxInFilterValues) {
				query := tokensRef(b.client, deletion.userID).Where(fieldToken, "in", chunk)
				snaps, err := tx.Documents(query).GetAll()
				if err != nil {
					return errors.Wrapf(err, "failed to resolve tokens for user %s", deletion.userID)
				}
				for _, snap := range snaps {
					refs = append(refs, snap.Ref)
				}
			}
		}
		for _, userID := range b.settings {
			refs = append(refs, settingsRef(b.client, userID))
		}
		for _, userID := range b.users {
			refs = append(refs, userRef(b.client, userID))
		}

		if len(refs) > repository.MaxBatchOperations {
			return errors.Errorf("batch resolves to %d writes (max %d)", len(refs), repository.MaxBatchOperations)
		}

		for _, ref := range refs {
			if err := tx.Delete(ref); err != nil {
				return errors.Wrapf(err, "failed to queue delete of %s", ref.Path)
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to commit write batch")
	}

	return nil
}
