package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"devotional/config"
	deliverycontext "devotional/internal/delivery/context"
	domainerrors "devotional/internal/domain/errors"
	"devotional/internal/errors"

	"github.com/labstack/echo/v4"
	"google.golang.org/api/idtoken"
)

// TokenValidator validates a Google-signed OIDC token for audience
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// TriggerAuthMiddleware checks the OIDC token Cloud Scheduler and Pub/Sub
// push attach to trigger requests.
type TriggerAuthMiddleware struct {
	enabled  bool
	audience string
	logger   *slog.Logger
	validate TokenValidator
}

// NewTriggerAuthMiddleware creates a trigger authentication middleware
func NewTriggerAuthMiddleware(logger *slog.Logger, cfg *config.Config) *TriggerAuthMiddleware {
	return newTriggerAuthMiddleware(logger, cfg, idtoken.Validate)
}

func newTriggerAuthMiddleware(logger *slog.Logger, cfg *config.Config, validate TokenValidator) *TriggerAuthMiddleware {
	return &TriggerAuthMiddleware{
		enabled:  cfg.Trigger.VerifyAuth,
		audience: cfg.Trigger.Audience,
		logger:   logger,
		validate: validate,
	}
}

// Authenticate rejects the trigger with UNAUTHORIZED_TRIGGER unless it carries
// a valid token. It passes everything through when verification is off.
func (m *TriggerAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		req := c.Request()
		if err := m.verify(req); err != nil {
			deliverycontext.LoggerOrDefault(req.Context(), m.logger).Warn("[Worker] Rejected unauthenticated trigger",
				slog.String("path", req.URL.Path),
				slog.Any("error", err),
			)

			return domainerrors.ErrUnauthorizedTrigger.WithDetails(err.Error())
		}

		return next(c)
	}
}

// verify checks the bearer token Google attaches to authenticated requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (m *TriggerAuthMiddleware) verify(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return errors.New("invalid authorization header format")
	}

	audience := m.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := m.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
