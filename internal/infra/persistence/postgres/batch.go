package postgres

import (
	"context"

	"devotional/internal/domain/repository"
	"devotional/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// batchWriter implements repository.BatchWriter with one GORM transaction per batch.
type batchWriter struct {
	db *gorm.DB
}

// NewBatchWriter is the constructor for batchWriter.
func NewBatchWriter(db *gorm.DB) repository.BatchWriter {
	return &batchWriter{db: db}
}

// NewBatch opens an empty write batch.
func (w *batchWriter) NewBatch() repository.WriteBatch {
	return &writeBatch{db: w.db, tokens: make(map[string][]string)}
}

type writeBatch struct {
	db       *gorm.DB
	order    []string
	tokens   map[string][]string
	settings []string
	users    []string
	size     int
}

func (b *writeBatch) DeleteToken(userID, token string) {
	if _, ok := b.tokens[userID]; !ok {
		b.order = append(b.order, userID)
	}
	b.tokens[userID] = append(b.tokens[userID], token)
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

// Commit runs every queued delete in one transaction; any failure rolls back all of them.
func (b *writeBatch) Commit(ctx context.Context) error {
	if b.size == 0 {
		return nil
	}

	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, userID := range b.order {
			if err := tx.
				Where("user_id = ? AND token IN ?", userID, b.tokens[userID]).
				Delete(&model.DeviceTokenModel{}).Error; err != nil {
				return errors.Wrapf(err, "failed to delete tokens of user %s", userID)
			}
		}

		if len(b.settings) > 0 {
			if err := tx.
				Where("user_id IN ?", b.settings).
				Delete(&model.NotificationSettingsModel{}).Error; err != nil {
				return errors.Wrap(err, "failed to delete notification settings")
			}
		}

		if len(b.users) > 0 {
			if err := tx.
				Where("id IN ?", b.users).
				Delete(&model.UserModel{}).Error; err != nil {
				return errors.Wrap(err, "failed to delete users")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to commit write batch")
	}

	return nil
}
