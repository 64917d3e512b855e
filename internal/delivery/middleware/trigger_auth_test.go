package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"devotional/config"
	"devotional/internal/delivery/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newAuthEcho(cfg *config.Config, validate TokenValidator) (*echo.Echo, *int) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := newTriggerAuthMiddleware(logger, cfg, validate)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	calls := new(int)
	ok := func(c echo.Context) error {
		*calls++

		return c.NoContent(http.StatusOK)
	}
	e.POST("/jobs/:job", ok, auth.Authenticate)
	e.POST("/pubsub/push", ok, auth.Authenticate)

	return e, calls
}

func TestTriggerAuthMiddleware_Authenticate(t *testing.T) {
	cfg := &config.Config{}
	cfg.Trigger.VerifyAuth = true
	cfg.Trigger.Audience = "https://worker.example.com"

	googleIssued := &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}

	tests := []struct {
		name       string
		path       string
		header     string
		payload    *idtoken.Payload
		validErr   error
		wantStatus int
	}{
		{name: "job route without header", path: "/jobs/retention", wantStatus: http.StatusUnauthorized},
		{name: "push route without header", path: "/pubsub/push", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", path: "/jobs/dispatch", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", path: "/jobs/retention", header: "Bearer bad", validErr: errors.New("invalid signature"), wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", path: "/pubsub/push", header: "Bearer t", payload: &idtoken.Payload{Issuer: "evil.example.com"}, wantStatus: http.StatusUnauthorized},
		{
			name:       "unverified email",
			path:       "/jobs/retention",
			header:     "Bearer t",
			payload:    &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus: http.StatusUnauthorized,
		},
		{name: "valid token on job route", path: "/jobs/retention", header: "Bearer t", payload: googleIssued, wantStatus: http.StatusOK},
		{name: "valid token on push route", path: "/pubsub/push", header: "Bearer t", payload: googleIssued, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, calls := newAuthEcho(cfg, func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://worker.example.com", audience)

				return tt.payload, tt.validErr
			})

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, 1, *calls)

				return
			}

			assert.Zero(t, *calls, "handler must not run")
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "UNAUTHORIZED_TRIGGER", body.Error.Code)
			assert.Nil(t, body.Error.Details)
		})
	}
}

func TestTriggerAuthMiddleware_AudienceDefaultsToRequestURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Trigger.VerifyAuth = true

	var gotAudience string
	e, _ := newAuthEcho(cfg, func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{Issuer: "accounts.google.com"}, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com/pubsub/push", gotAudience)
}

func TestTriggerAuthMiddleware_DisabledPassesThrough(t *testing.T) {
	e, calls := newAuthEcho(&config.Config{}, func(context.Context, string, string) (*idtoken.Payload, error) {
		t.Fatal("validator must not be called when verification is off")

		return nil, nil
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/dispatch", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, *calls)
}
