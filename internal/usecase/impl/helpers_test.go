package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"devotional/config"
	"devotional/internal/domain/entity"
	"devotional/internal/domain/service"
	"devotional/internal/infra/content"
	"devotional/internal/infra/persistence/memory"
	mockSvc "devotional/internal/mocks/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Push.MulticastLimit = 500
	cfg.Dispatch.Concurrency = 4
	cfg.Dispatch.Timeout = time.Minute
	cfg.Dispatch.DefaultLanguage = "es"
	cfg.Dispatch.NotificationType = "daily_devotional"
	cfg.Retention.UserStaleAfter = 15 * 24 * time.Hour
	cfg.Retention.TokenMaxAge = 30 * 24 * time.Hour
	cfg.Retention.BatchFlushThreshold = 450
	cfg.Retention.Timeout = time.Minute

	return cfg
}

func newTestCatalog(t *testing.T) service.ContentCatalog {
	t.Helper()

	doc := content.DefaultDocument()
	doc.ImageURL = "https://example.com/daily.png"
	catalog, err := content.New(doc, "es")
	require.NoError(t, err)

	return catalog
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

// seedUser stores a root record, settings and tokens for one user.
func seedUser(store *memory.Store, settings *entity.NotificationSettings, tokens ...*entity.DeviceToken) {
	store.PutUser(settings.UserID)
	store.PutSettings(settings)
	for _, token := range tokens {
		token.UserID = settings.UserID
		store.PutToken(token)
	}
}

// pushRecorder answers SendMulticast from a per-token failure table and keeps
// every message it was given.
type pushRecorder struct {
	mu       sync.Mutex
	failures map[string]entity.FailureClass
	messages []*entity.PushMessage
}

func newPushRecorder(failures map[string]entity.FailureClass) *pushRecorder {
	if failures == nil {
		failures = map[string]entity.FailureClass{}
	}

	return &pushRecorder{failures: failures}
}

func (r *pushRecorder) send(_ context.Context, msg *entity.PushMessage) (*entity.MulticastResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, msg)

	result := &entity.MulticastResult{}
	for _, token := range msg.Tokens {
		failure, failed := r.failures[token]
		if failed {
			result.FailureCount++
			result.Outcomes = append(result.Outcomes, entity.SendOutcome{Token: token, Failure: failure})

			continue
		}
		result.SuccessCount++
		result.Outcomes = append(result.Outcomes, entity.SendOutcome{Token: token, Success: true, MessageID: "m-" + token})
	}

	return result, nil
}

func (r *pushRecorder) sent() []*entity.PushMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*entity.PushMessage(nil), r.messages...)
}

func newMockPush(t *testing.T, recorder *pushRecorder, limit int) *mockSvc.MockPushService {
	push := mockSvc.NewMockPushService(t)
	push.EXPECT().MaxTokensPerCall().Return(limit).Maybe()
	if recorder != nil {
		push.EXPECT().SendMulticast(mock.Anything, mock.Anything).RunAndReturn(recorder.send).Maybe()
	}

	return push
}
