package impl

import (
	"context"
	"log/slog"

	"devotional/internal/domain/entity"
	"devotional/internal/domain/repository"
)

// batchDeleter accumulates deletions and commits them whenever the open batch
// reaches threshold operations. A failed commit drops that batch only; a fresh
// batch is opened and the caller keeps going.
type batchDeleter struct {
	writer    repository.BatchWriter
	threshold int
	logger    *slog.Logger

	batch repository.WriteBatch
	stats entity.BatchStats
}

func newBatchDeleter(writer repository.BatchWriter, threshold int, logger *slog.Logger) *batchDeleter {
	if threshold <= 0 || threshold > repository.MaxBatchOperations {
		threshold = repository.MaxBatchOperations
	}

	return &batchDeleter{
		writer:    writer,
		threshold: threshold,
		logger:    logger,
		batch:     writer.NewBatch(),
	}
}

// DeleteToken queues one token deletion.
func (d *batchDeleter) DeleteToken(ctx context.Context, userID, token string) {
	d.batch.DeleteToken(userID, token)
	d.flushIfFull(ctx)
}

// EvictUser queues the deletion of a user's tokens, settings and root record.
// Batches are only cut at the threshold, so a user may span two commits.
func (d *batchDeleter) EvictUser(ctx context.Context, userID string, tokens []string) {
	for _, token := range tokens {
		d.batch.DeleteToken(userID, token)
		d.flushIfFull(ctx)
	}
	d.batch.DeleteSettings(userID)
	d.flushIfFull(ctx)
	d.batch.DeleteUser(userID)
	d.flushIfFull(ctx)
}

// Close commits whatever is still pending and returns the accumulated stats.
func (d *batchDeleter) Close(ctx context.Context) entity.BatchStats {
	d.flush(ctx)

	return d.stats
}

func (d *batchDeleter) flushIfFull(ctx context.Context) {
	if d.batch.Len() >= d.threshold {
		d.flush(ctx)
	}
}

func (d *batchDeleter) flush(ctx context.Context) {
	n := d.batch.Len()
	if n == 0 {
		return
	}

	if err := d.batch.Commit(ctx); err != nil {
		d.stats.FailedCommits++
		d.stats.Dropped += n
		d.logger.Error("Batch commit failed, deletions dropped for this run",
			slog.Int("operations", n),
			slog.Any("error", err),
		)
	} else {
		d.stats.Commits++
		d.stats.Deleted += n
		d.logger.Debug("Batch committed", slog.Int("operations", n))
	}

	d.batch = d.writer.NewBatch()
}
