package notification

import (
	"context"
	"log/slog"

	"devotional/config"
	"devotional/internal/domain/entity"
	"devotional/internal/domain/service"

	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// fcmMulticastLimit is the FCM ceiling of tokens per multicast request
const fcmMulticastLimit = 500

// multicastSender is the subset of *messaging.Client used here
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
	SendEachForMulticastDryRun(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client  multicastSender
	limit   int
	limiter *rate.Limiter
	logger  *slog.Logger
}

// FirebaseServiceParams holds dependencies for the Firebase push service
type FirebaseServiceParams struct {
	fx.In

	Client *messaging.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(params FirebaseServiceParams) service.PushService {
	return newFirebaseService(params.Client, params.Config.Push, params.Logger)
}

func newFirebaseService(client multicastSender, cfg config.PushConfig, logger *slog.Logger) *firebaseService {
	limit := cfg.MulticastLimit
	if limit <= 0 || limit > fcmMulticastLimit {
		limit = fcmMulticastLimit
	}

	burst := max(cfg.Burst, 1)
	limiter := rate.NewLimiter(rate.Inf, burst)
	if cfg.SendsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.SendsPerSecond), burst)
	}

	return &firebaseService{
		client:  client,
		limit:   limit,
		limiter: limiter,
		logger:  logger,
	}
}

// MaxTokensPerCall returns the configured multicast ceiling
func (s *firebaseService) MaxTokensPerCall() int {
	return s.limit
}

// SendMulticast sends one multicast request and classifies every per-token failure
func (s *firebaseService) SendMulticast(ctx context.Context, msg *entity.PushMessage) (*entity.MulticastResult, error) {
	if msg == nil || len(msg.Tokens) == 0 {
		return &entity.MulticastResult{}, nil
	}

	if len(msg.Tokens) > s.limit {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(msg.Tokens), s.limit)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "push rate limiter")
	}

	message := buildMulticastMessage(msg)

	var (
		response *messaging.BatchResponse
		err      error
	)
	if msg.DryRun {
		response, err = s.client.SendEachForMulticastDryRun(ctx, message)
	} else {
		response, err = s.client.SendEachForMulticast(ctx, message)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &entity.MulticastResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Outcomes:     make([]entity.SendOutcome, 0, len(msg.Tokens)),
	}

	for idx, sendResponse := range response.Responses {
		if idx >= len(msg.Tokens) {
			break
		}

		outcome := entity.SendOutcome{Token: msg.Tokens[idx]}
		if sendResponse != nil {
			outcome.Success = sendResponse.Success
			outcome.MessageID = sendResponse.MessageID
			if sendResponse.Error != nil {
				outcome.Success = false
				outcome.Err = sendResponse.Error
				outcome.Failure = classifyError(sendResponse.Error)
			}
		}
		if !outcome.Success && outcome.Failure == entity.FailureNone {
			outcome.Failure = entity.FailureUnknown
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	s.logger.Debug("[FCM] Multicast sent",
		slog.Int("tokens", len(msg.Tokens)),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
		slog.Bool("dry_run", msg.DryRun),
	)

	return result, nil
}

// classifyError maps FCM error codes onto provider-neutral failure classes
func classifyError(err error) entity.FailureClass {
	switch {
	case messaging.IsUnregistered(err):
		return entity.FailureUnregistered
	case messaging.IsInvalidArgument(err):
		return entity.FailureInvalidArgument
	case messaging.IsQuotaExceeded(err):
		return entity.FailureQuotaExceeded
	case messaging.IsSenderIDMismatch(err), messaging.IsThirdPartyAuthError(err):
		return entity.FailureAuth
	case errorutils.IsUnavailable(err):
		return entity.FailureUnavailable
	case errorutils.IsInternal(err):
		return entity.FailureInternal
	default:
		return entity.FailureUnknown
	}
}

// buildMulticastMessage converts the neutral message into FCM form. Visible
// messages carry an image for Android and mutable-content for iOS so the
// notification service extension can attach it; silent probes carry data only.
func buildMulticastMessage(msg *entity.PushMessage) *messaging.MulticastMessage {
	message := &messaging.MulticastMessage{
		Tokens: msg.Tokens,
		Data:   msg.Data,
	}

	if msg.Silent {
		message.Android = &messaging.AndroidConfig{Priority: "normal"}
		message.APNS = &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-push-type": "background",
				"apns-priority":  "5",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{ContentAvailable: true},
			},
		}

		return message
	}

	message.Notification = &messaging.Notification{
		Title:    msg.Title,
		Body:     msg.Body,
		ImageURL: msg.ImageURL,
	}
	message.Android = &messaging.AndroidConfig{
		Priority: "high",
		Notification: &messaging.AndroidNotification{
			ImageURL:    msg.ImageURL,
			ClickAction: msg.ClickAction,
		},
	}
	message.APNS = &messaging.APNSConfig{
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{
				MutableContent: true,
				Sound:          "default",
			},
		},
	}
	if msg.ImageURL != "" {
		message.APNS.FCMOptions = &messaging.APNSFCMOptions{ImageURL: msg.ImageURL}
	}

	return message
}
