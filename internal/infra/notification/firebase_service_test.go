package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"devotional/config"
	"devotional/internal/domain/entity"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	response   *messaging.BatchResponse
	err        error
	sent       []*messaging.MulticastMessage
	dryRunSent []*messaging.MulticastMessage
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.sent = append(f.sent, message)

	return f.response, f.err
}

func (f *fakeSender) SendEachForMulticastDryRun(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.dryRunSent = append(f.dryRunSent, message)

	return f.response, f.err
}

func newTestService(sender *fakeSender, limit int) *firebaseService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newFirebaseService(sender, config.PushConfig{MulticastLimit: limit, SendsPerSecond: 1000, Burst: 10}, logger)
}

func TestFirebaseService_SendMulticast_MapsOutcomesInTokenOrder(t *testing.T) {
	sender := &fakeSender{
		response: &messaging.BatchResponse{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []*messaging.SendResponse{
				{Success: true, MessageID: "m-1"},
				{Success: false, Error: errors.New("boom")},
			},
		},
	}
	svc := newTestService(sender, 500)

	result, err := svc.SendMulticast(context.Background(), &entity.PushMessage{
		Tokens: []string{"tok-a", "tok-b"},
		Title:  "Devocional Diario",
		Body:   "body",
	})

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 2)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Equal(t, entity.SendOutcome{Token: "tok-a", Success: true, MessageID: "m-1"}, result.Outcomes[0])
	assert.Equal(t, "tok-b", result.Outcomes[1].Token)
	assert.False(t, result.Outcomes[1].Success)
	assert.Equal(t, entity.FailureUnknown, result.Outcomes[1].Failure)
	assert.Empty(t, result.InvalidTokens())
	assert.Equal(t, []string{"tok-b"}, result.FailedTokens())
	require.Len(t, sender.sent, 1)
	assert.Empty(t, sender.dryRunSent)
}

func TestFirebaseService_SendMulticast_DryRunUsesValidationEndpoint(t *testing.T) {
	sender := &fakeSender{response: &messaging.BatchResponse{
		SuccessCount: 1,
		Responses:    []*messaging.SendResponse{{Success: true}},
	}}
	svc := newTestService(sender, 500)

	_, err := svc.SendMulticast(context.Background(), &entity.PushMessage{Tokens: []string{"t"}, Silent: true, DryRun: true})

	require.NoError(t, err)
	assert.Empty(t, sender.sent)
	assert.Len(t, sender.dryRunSent, 1)
}

func TestFirebaseService_SendMulticast_RejectsOversizedChunk(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(sender, 2)

	_, err := svc.SendMulticast(context.Background(), &entity.PushMessage{Tokens: []string{"a", "b", "c"}})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds limit")
	assert.Empty(t, sender.sent)
}

func TestFirebaseService_SendMulticast_EmptyTokensIsNoop(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(sender, 500)

	result, err := svc.SendMulticast(context.Background(), &entity.PushMessage{})

	require.NoError(t, err)
	assert.Empty(t, result.Outcomes)
	assert.Empty(t, sender.sent)
}

func TestFirebaseService_SendMulticast_WholeCallFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("unavailable")}
	svc := newTestService(sender, 500)

	result, err := svc.SendMulticast(context.Background(), &entity.PushMessage{Tokens: []string{"a"}})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestNewFirebaseService_ClampsLimit(t *testing.T) {
	assert.Equal(t, 500, newTestService(&fakeSender{}, 0).MaxTokensPerCall())
	assert.Equal(t, 500, newTestService(&fakeSender{}, 1000).MaxTokensPerCall())
	assert.Equal(t, 100, newTestService(&fakeSender{}, 100).MaxTokensPerCall())
}

func TestBuildMulticastMessage_VisibleCarriesPlatformHints(t *testing.T) {
	msg := buildMulticastMessage(&entity.PushMessage{
		Tokens:      []string{"a"},
		Title:       "Daily Devotional",
		Body:        "It's time",
		ImageURL:    "https://example.com/daily.png",
		ClickAction: "FLUTTER_NOTIFICATION_CLICK",
		Data:        map[string]string{"userId": "u1"},
	})

	require.NotNil(t, msg.Notification)
	assert.Equal(t, "Daily Devotional", msg.Notification.Title)
	assert.Equal(t, "https://example.com/daily.png", msg.Notification.ImageURL)
	require.NotNil(t, msg.Android)
	assert.Equal(t, "https://example.com/daily.png", msg.Android.Notification.ImageURL)
	assert.Equal(t, "FLUTTER_NOTIFICATION_CLICK", msg.Android.Notification.ClickAction)
	require.NotNil(t, msg.APNS)
	assert.True(t, msg.APNS.Payload.Aps.MutableContent)
	assert.Equal(t, "https://example.com/daily.png", msg.APNS.FCMOptions.ImageURL)
	assert.Equal(t, "u1", msg.Data["userId"])
}

func TestBuildMulticastMessage_SilentHasNoNotification(t *testing.T) {
	msg := buildMulticastMessage(&entity.PushMessage{
		Tokens: []string{"a"},
		Data:   map[string]string{"type": "cleanup_check"},
		Silent: true,
	})

	assert.Nil(t, msg.Notification)
	require.NotNil(t, msg.APNS)
	assert.True(t, msg.APNS.Payload.Aps.ContentAvailable)
	assert.Equal(t, "background", msg.APNS.Headers["apns-push-type"])
	assert.Equal(t, "cleanup_check", msg.Data["type"])
}
