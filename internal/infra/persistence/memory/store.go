// Package memory is an in-process record store for local runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"devotional/internal/domain/entity"
	"devotional/internal/domain/repository"

	"github.com/pkg/errors"
)

// ErrCommitRejected is returned by Commit when a failure was injected with FailNextCommits.
var ErrCommitRejected = errors.New("commit rejected")

type userRecord struct {
	root     bool
	settings *entity.NotificationSettings
	tokens   []*entity.DeviceToken
}

// Store keeps users, settings and tokens in maps guarded by one lock.
// It implements every repository interface of the record store.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*userRecord
	commits     int
	failCommits int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{users: make(map[string]*userRecord)}
}

func (s *Store) record(userID string) *userRecord {
	rec, ok := s.users[userID]
	if !ok {
		rec = &userRecord{}
		s.users[userID] = rec
	}

	return rec
}

// PutUser creates the root record for userID.
func (s *Store) PutUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record(userID).root = true
}

// PutSettings stores a copy of settings under settings.UserID.
func (s *Store) PutSettings(settings *entity.NotificationSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *settings
	s.record(settings.UserID).settings = &copied
}

// PutToken registers a copy of token under token.UserID.
func (s *Store) PutToken(token *entity.DeviceToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *token
	rec := s.record(token.UserID)
	rec.tokens = append(rec.tokens, &copied)
}

// HasUser reports whether the root record of userID exists.
func (s *Store) HasUser(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[userID]

	return ok && rec.root
}

// Commits returns how many batches were committed successfully.
func (s *Store) Commits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.commits
}

// FailNextCommits makes the next n commits fail without applying anything.
func (s *Store) FailNextCommits(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failCommits = n
}

// ListUserIDs returns users with a root record or any sub-record, sorted.
func (s *Store) ListUserIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.users))
	for id, rec := range s.users {
		if rec.root || rec.settings != nil || len(rec.tokens) > 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	return ids, nil
}

// FindSettings returns a copy of the user's settings.
func (s *Store) FindSettings(_ context.Context, userID string) (*entity.NotificationSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[userID]
	if !ok || rec.settings == nil {
		return nil, repository.ErrSettingsNotFound
	}
	copied := *rec.settings

	return &copied, nil
}

// UpdateLastSent sets the dedup marker.
func (s *Store) UpdateLastSent(_ context.Context, userID string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[userID]
	if !ok || rec.settings == nil {
		return repository.ErrSettingsNotFound
	}
	at := sentAt.UTC()
	rec.settings.LastSentAt = &at

	return nil
}

// FindTokensByUser returns copies of the user's tokens in registration order.
func (s *Store) FindTokensByUser(_ context.Context, userID string) ([]*entity.DeviceToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[userID]
	if !ok {
		return nil, nil
	}

	tokens := make([]*entity.DeviceToken, 0, len(rec.tokens))
	for _, token := range rec.tokens {
		copied := *token
		tokens = append(tokens, &copied)
	}

	return tokens, nil
}

// NewBatch opens an empty write batch.
func (s *Store) NewBatch() repository.WriteBatch {
	return &writeBatch{store: s}
}

type operationKind int

const (
	opDeleteToken operationKind = iota
	opDeleteSettings
	opDeleteUser
)

type operation struct {
	kind   operationKind
	userID string
	token  string
}

type writeBatch struct {
	store *Store
	ops   []operation
}

func (b *writeBatch) DeleteToken(userID, token string) {
	b.ops = append(b.ops, operation{kind: opDeleteToken, userID: userID, token: token})
}

func (b *writeBatch) DeleteSettings(userID string) {
	b.ops = append(b.ops, operation{kind: opDeleteSettings, userID: userID})
}

func (b *writeBatch) DeleteUser(userID string) {
	b.ops = append(b.ops, operation{kind: opDeleteUser, userID: userID})
}

func (b *writeBatch) Len() int {
	return len(b.ops)
}

func (b *writeBatch) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "commit canceled")
	}
	if len(b.ops) > repository.MaxBatchOperations {
		return errors.Errorf("batch has %d operations (max %d)", len(b.ops), repository.MaxBatchOperations)
	}

	s := b.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failCommits > 0 {
		s.failCommits--

		return ErrCommitRejected
	}

	for _, op := range b.ops {
		rec, ok := s.users[op.userID]
		if !ok {
			continue
		}

		switch op.kind {
		case opDeleteToken:
			rec.tokens = slices.DeleteFunc(rec.tokens, func(t *entity.DeviceToken) bool {
				return t.Token == op.token
			})
		case opDeleteSettings:
			rec.settings = nil
		case opDeleteUser:
			rec.root = false
		}

		if !rec.root && rec.settings == nil && len(rec.tokens) == 0 {
			delete(s.users, op.userID)
		}
	}
	s.commits++

	return nil
}
