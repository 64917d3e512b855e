package service

import (
	"context"

	"devotional/internal/domain/entity"
)

// PushService defines the interface for the push-delivery provider
type PushService interface {
	// SendMulticast sends one message to all tokens in msg and returns the
	// per-token outcomes. An error means the whole call failed.
	SendMulticast(ctx context.Context, msg *entity.PushMessage) (*entity.MulticastResult, error)

	// MaxTokensPerCall is the provider's multicast ceiling
	MaxTokensPerCall() int
}
