package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFailureClass_InvalidatesToken(t *testing.T) {
	assert.True(t, FailureUnregistered.InvalidatesToken())
	assert.True(t, FailureInvalidArgument.InvalidatesToken())

	for _, class := range []FailureClass{FailureNone, FailureQuotaExceeded, FailureUnavailable, FailureInternal, FailureAuth, FailureUnknown} {
		assert.False(t, class.InvalidatesToken(), class)
	}
}

func TestMulticastResult_TokenSelections(t *testing.T) {
	result := &MulticastResult{
		SuccessCount: 1,
		FailureCount: 3,
		Outcomes: []SendOutcome{
			{Token: "ok", Success: true},
			{Token: "gone", Failure: FailureUnregistered},
			{Token: "busy", Failure: FailureUnavailable},
			{Token: "bad", Failure: FailureInvalidArgument},
		},
	}

	assert.Equal(t, []string{"gone", "bad"}, result.InvalidTokens())
	assert.Equal(t, []string{"gone", "busy", "bad"}, result.FailedTokens())

	var empty *MulticastResult
	assert.Nil(t, empty.InvalidTokens())
	assert.Nil(t, empty.FailedTokens())
}

func TestDeviceToken_OlderThan(t *testing.T) {
	now := time.Date(2025, 6, 10, 3, 0, 0, 0, time.UTC)
	maxAge := 30 * 24 * time.Hour

	assert.True(t, (&DeviceToken{CreatedAt: now.Add(-40 * 24 * time.Hour)}).OlderThan(now, maxAge))
	assert.False(t, (&DeviceToken{CreatedAt: now.Add(-2 * 24 * time.Hour)}).OlderThan(now, maxAge))
	assert.False(t, (&DeviceToken{}).OlderThan(now, maxAge), "unknown creation time")
}

func TestTokenValues(t *testing.T) {
	values := TokenValues([]*DeviceToken{{Token: "a"}, nil, {Token: ""}, {Token: "b"}})

	assert.Equal(t, []string{"a", "b"}, values)
	assert.Empty(t, TokenValues(nil))
}
