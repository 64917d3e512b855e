package impl

import (
	"context"
	"testing"
	"time"

	"devotional/internal/domain/entity"
	"devotional/internal/domain/repository"
	"devotional/internal/domain/service"
	"devotional/internal/infra/persistence/memory"
	mockRepo "devotional/internal/mocks/repository"
	"devotional/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDispatchService(t *testing.T, store *memory.Store, push service.PushService) usecase.DispatchUsecase {
	return NewDispatchService(DispatchServiceParams{
		Logger:   discardLogger(),
		Config:   newTestConfig(),
		Users:    store,
		Settings: store,
		Tokens:   store,
		Batches:  store,
		Push:     push,
		Catalog:  newTestCatalog(t),
	})
}

func bogotaUser(userID string) *entity.NotificationSettings {
	return &entity.NotificationSettings{
		UserID:           userID,
		Enabled:          true,
		NotificationTime: "08:00",
		Timezone:         "America/Bogota",
	}
}

func TestDispatchService_BogotaScenario(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedUser(store, bogotaUser("user-a"), &entity.DeviceToken{Token: "tok-a"})
	recorder := newPushRecorder(nil)
	svc := createTestDispatchService(t, store, newMockPush(t, recorder, 500))

	// 13:00Z is 08:00 in Bogotá: eligible and never sent before.
	firstRun := time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC)
	report, err := svc.RunDispatch(ctx, firstRun)
	require.NoError(t, err)
	assert.Equal(t, 1, report.UsersSent)
	require.Len(t, recorder.sent(), 1)

	settings, err := store.FindSettings(ctx, "user-a")
	require.NoError(t, err)
	require.NotNil(t, settings.LastSentAt)
	assert.True(t, settings.LastSentAt.Equal(firstRun))

	// 14:00Z is 09:00 local: not the preferred hour.
	report, err = svc.RunDispatch(ctx, firstRun.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, report.UsersSent)
	assert.Equal(t, 1, report.Skipped[entity.SkipNotPreferredHour])

	// A repeated trigger in the same hour finds today's marker.
	report, err = svc.RunDispatch(ctx, firstRun.Add(20*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped[entity.SkipAlreadySent])
	assert.Len(t, recorder.sent(), 1)

	// The next local day is a new date.
	report, err = svc.RunDispatch(ctx, firstRun.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, report.UsersSent)
	assert.Len(t, recorder.sent(), 2)
}

func TestDispatchService_BuildsLocalizedMessage(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	settings := bogotaUser("user-pt")
	settings.PreferredLanguage = "pt-BR"
	seedUser(store, settings, &entity.DeviceToken{Token: "tok-1"}, &entity.DeviceToken{Token: "tok-2"})
	recorder := newPushRecorder(nil)
	svc := createTestDispatchService(t, store, newMockPush(t, recorder, 500))

	_, err := svc.RunDispatch(ctx, time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	sent := recorder.sent()
	require.Len(t, sent, 1)
	msg := sent[0]
	assert.Equal(t, []string{"tok-1", "tok-2"}, msg.Tokens)
	assert.Equal(t, "Devocional Diário", msg.Title)
	assert.Equal(t, "https://example.com/daily.png", msg.ImageURL)
	assert.Equal(t, "FLUTTER_NOTIFICATION_CLICK", msg.ClickAction)
	assert.False(t, msg.Silent)
	assert.Equal(t, map[string]string{
		"userId":       "user-pt",
		"type":         "daily_devotional",
		"devotionalId": "daily",
		"click_action": "FLUTTER_NOTIFICATION_CLICK",
	}, msg.Data)
}

func TestDispatchService_SkipsIneligibleUsers(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC)
	store := memory.NewStore()

	disabled := bogotaUser("disabled")
	disabled.Enabled = false
	noZone := bogotaUser("no-zone")
	noZone.Timezone = ""
	badZone := bogotaUser("bad-zone")
	badZone.Timezone = "Not/AZone"
	badTime := bogotaUser("bad-time")
	badTime.NotificationTime = "8am"

	for _, settings := range []*entity.NotificationSettings{disabled, noZone, badZone, badTime} {
		seedUser(store, settings, &entity.DeviceToken{Token: "tok-" + settings.UserID})
	}
	store.PutUser("no-settings")
	seedUser(store, bogotaUser("no-tokens"))

	// No SendMulticast expectation: any send fails the test.
	svc := createTestDispatchService(t, store, newMockPush(t, nil, 500))

	report, err := svc.RunDispatch(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 6, report.UsersScanned)
	assert.Equal(t, 0, report.UsersSent)
	assert.Equal(t, map[entity.SkipReason]int{
		entity.SkipDisabled:        1,
		entity.SkipMissingTimezone: 1,
		entity.SkipInvalidTimezone: 1,
		entity.SkipInvalidTime:     1,
		entity.SkipNoSettings:      1,
		entity.SkipNoTokens:        1,
	}, report.Skipped)
}

func TestDispatchService_InvalidTimezoneNeverSends(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	settings := bogotaUser("user-x")
	settings.Timezone = "Not/AZone"
	seedUser(store, settings, &entity.DeviceToken{Token: "tok"})
	svc := createTestDispatchService(t, store, newMockPush(t, nil, 500))

	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	for hour := range 24 {
		report, err := svc.RunDispatch(ctx, start.Add(time.Duration(hour)*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, 1, report.Skipped[entity.SkipInvalidTimezone])
	}
}

func TestDispatchService_DedupUsesCurrentLocalDate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lastSent time.Time
		wantSent bool
	}{
		// 02:00Z on the 10th is still the 9th in Bogotá.
		{name: "same UTC date but previous local date", lastSent: time.Date(2025, 6, 10, 2, 0, 0, 0, time.UTC), wantSent: true},
		// 05:30Z is 00:30 local on the 10th.
		{name: "earlier today in local time", lastSent: time.Date(2025, 6, 10, 5, 30, 0, 0, time.UTC), wantSent: false},
		{name: "yesterday", lastSent: now.Add(-24 * time.Hour), wantSent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			settings := bogotaUser("user-a")
			settings.LastSentAt = ptrTime(tt.lastSent)
			seedUser(store, settings, &entity.DeviceToken{Token: "tok"})
			recorder := newPushRecorder(nil)
			svc := createTestDispatchService(t, store, newMockPush(t, recorder, 500))

			report, err := svc.RunDispatch(ctx, now)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSent, report.UsersSent == 1)
			assert.Equal(t, tt.wantSent, len(recorder.sent()) == 1)
		})
	}
}

func TestDispatchService_PrunesOnlyPermanentlyInvalidTokens(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	seedUser(store, bogotaUser("user-a"),
		&entity.DeviceToken{Token: "ok"},
		&entity.DeviceToken{Token: "gone"},
		&entity.DeviceToken{Token: "bad"},
		&entity.DeviceToken{Token: "busy"},
	)
	recorder := newPushRecorder(map[string]entity.FailureClass{
		"gone": entity.FailureUnregistered,
		"bad":  entity.FailureInvalidArgument,
		"busy": entity.FailureUnavailable,
	})
	svc := createTestDispatchService(t, store, newMockPush(t, recorder, 500))

	report, err := svc.RunDispatch(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, report.UsersSent)
	assert.Equal(t, 1, report.TokensSent)
	assert.Equal(t, 3, report.TokensFailed)
	assert.Equal(t, 2, report.TokensPruned)

	tokens, err := store.FindTokensByUser(ctx, "user-a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ok", "busy"}, entity.TokenValues(tokens))

	settings, err := store.FindSettings(ctx, "user-a")
	require.NoError(t, err)
	assert.NotNil(t, settings.LastSentAt, "partial success still records the marker")
}

func TestDispatchService_PruneUsesConfiguredFlushThreshold(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC)
	store := memory.NewStore()
	failures := map[string]entity.FailureClass{}
	tokens := make([]*entity.DeviceToken, 0, 5)
	for _, value := range []string{"t1", "t2", "t3", "t4", "t5"} {
		tokens = append(tokens, &entity.DeviceToken{Token: value})
		failures[value] = entity.FailureUnregistered
	}
	seedUser(store, bogotaUser("user-a"), tokens...)

	cfg := newTestConfig()
	cfg.Retention.BatchFlushThreshold = 2
	svc := NewDispatchService(DispatchServiceParams{
		Logger:   discardLogger(),
		Config:   cfg,
		Users:    store,
		Settings: store,
		Tokens:   store,
		Batches:  store,
		Push:     newMockPush(t, newPushRecorder(failures), 500),
		Catalog:  newTestCatalog(t),
	})

	report, err := svc.RunDispatch(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 5, report.TokensPruned)
	assert.Equal(t, 3, store.Commits())
}

func TestDispatchService_AllTokensFailedLeavesMarkerUnset(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedUser(store, bogotaUser("user-a"), &entity.DeviceToken{Token: "gone"}, &entity.DeviceToken{Token: "busy"})
	recorder := newPushRecorder(map[string]entity.FailureClass{
		"gone": entity.FailureUnregistered,
		"busy": entity.FailureQuotaExceeded,
	})
	svc := createTestDispatchService(t, store, newMockPush(t, recorder, 500))

	report, err := svc.RunDispatch(ctx, time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, 0, report.UsersSent)
	assert.Equal(t, 1, report.SendFailures)
	assert.Equal(t, 1, report.TokensPruned)

	settings, err := store.FindSettings(ctx, "user-a")
	require.NoError(t, err)
	assert.Nil(t, settings.LastSentAt)
}

func TestDispatchService_WholeSendFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedUser(store, bogotaUser("user-a"), &entity.DeviceToken{Token: "tok"})
	push := newMockPush(t, nil, 500)
	push.EXPECT().SendMulticast(mock.Anything, mock.Anything).Return(nil, errors.New("unavailable")).Once()
	svc := createTestDispatchService(t, store, push)

	report, err := svc.RunDispatch(ctx, time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, 1, report.SendFailures)
	assert.Equal(t, 1, report.TokensFailed)

	tokens, err := store.FindTokensByUser(ctx, "user-a")
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}

func TestDispatchService_ChunksTokensAtProviderLimit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedUser(store, bogotaUser("user-a"),
		&entity.DeviceToken{Token: "t1"}, &entity.DeviceToken{Token: "t2"}, &entity.DeviceToken{Token: "t3"},
	)
	recorder := newPushRecorder(nil)
	svc := createTestDispatchService(t, store, newMockPush(t, recorder, 2))

	report, err := svc.RunDispatch(ctx, time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, 3, report.TokensSent)
	sent := recorder.sent()
	require.Len(t, sent, 2)
	assert.Len(t, sent[0].Tokens, 2)
	assert.Len(t, sent[1].Tokens, 1)
}

func TestDispatchService_ManyUsersConcurrently(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for i := range 50 {
		userID := "user-" + string(rune('A'+i%26)) + string(rune('a'+i/26))
		seedUser(store, bogotaUser(userID), &entity.DeviceToken{Token: "tok-" + userID})
	}
	recorder := newPushRecorder(nil)
	svc := createTestDispatchService(t, store, newMockPush(t, recorder, 500))

	report, err := svc.RunDispatch(ctx, time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, 50, report.UsersScanned)
	assert.Equal(t, 50, report.UsersSent)
	assert.Len(t, recorder.sent(), 50)
}

func TestDispatchService_EnumerationFailureIsFatal(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	users.EXPECT().ListUserIDs(mock.Anything).Return(nil, errors.New("firestore unavailable"))

	svc := NewDispatchService(DispatchServiceParams{
		Logger:   discardLogger(),
		Config:   newTestConfig(),
		Users:    users,
		Settings: mockRepo.NewMockSettingsRepository(t),
		Tokens:   mockRepo.NewMockTokenRepository(t),
		Batches:  mockRepo.NewMockBatchWriter(t),
		Push:     newMockPush(t, nil, 500),
		Catalog:  newTestCatalog(t),
	})

	report, err := svc.RunDispatch(context.Background(), time.Now())

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestDispatchService_StoreErrorsSkipOnlyThatUser(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC)

	users := mockRepo.NewMockUserRepository(t)
	users.EXPECT().ListUserIDs(mock.Anything).Return([]string{"broken", "tokens-broken", "healthy"}, nil)

	settings := mockRepo.NewMockSettingsRepository(t)
	settings.EXPECT().FindSettings(mock.Anything, "broken").Return(nil, errors.New("deadline exceeded"))
	settings.EXPECT().FindSettings(mock.Anything, "tokens-broken").Return(bogotaUser("tokens-broken"), nil)
	settings.EXPECT().FindSettings(mock.Anything, "healthy").Return(bogotaUser("healthy"), nil)
	settings.EXPECT().UpdateLastSent(mock.Anything, "healthy", now).Return(repository.ErrSettingsNotFound)

	tokens := mockRepo.NewMockTokenRepository(t)
	tokens.EXPECT().FindTokensByUser(mock.Anything, "tokens-broken").Return(nil, errors.New("permission denied"))
	tokens.EXPECT().FindTokensByUser(mock.Anything, "healthy").Return([]*entity.DeviceToken{{UserID: "healthy", Token: "tok"}}, nil)

	recorder := newPushRecorder(nil)
	svc := NewDispatchService(DispatchServiceParams{
		Logger:   discardLogger(),
		Config:   newTestConfig(),
		Users:    users,
		Settings: settings,
		Tokens:   tokens,
		Batches:  mockRepo.NewMockBatchWriter(t),
		Push:     newMockPush(t, recorder, 500),
		Catalog:  newTestCatalog(t),
	})

	report, err := svc.RunDispatch(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Skipped[entity.SkipStoreError])
	assert.Equal(t, 1, report.UsersSent)
	assert.Equal(t, 1, report.MarkerFailures)
}
