package repository

import "context"

// MaxBatchOperations is the store's hard ceiling of writes per atomic batch.
const MaxBatchOperations = 500

// BatchWriter opens atomic write batches against the record store.
type BatchWriter interface {
	NewBatch() WriteBatch
}

// WriteBatch queues deletions and commits them atomically. Tokens are
// addressed by value within their owner's subtree.
type WriteBatch interface {
	// DeleteToken queues removal of every record of token owned by userID.
	DeleteToken(userID, token string)

	// DeleteSettings queues removal of the user's settings record.
	DeleteSettings(userID string)

	// DeleteUser queues removal of the user's root record.
	DeleteUser(userID string)

	// Len returns the number of queued operations.
	Len() int

	// Commit applies all queued operations in one transaction.
	Commit(ctx context.Context) error
}
