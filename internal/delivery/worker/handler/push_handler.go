package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "devotional/internal/delivery/context"
	"devotional/internal/domain/entity"
	domainerrors "devotional/internal/domain/errors"
	"devotional/internal/errors"
	"devotional/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TriggerPayload is the JSON body published to the trigger topic
type TriggerPayload struct {
	Job string `json:"job"`
}

// PushHandler runs jobs triggered through a Pub/Sub push subscription
type PushHandler struct {
	logger *slog.Logger
	jobs   usecase.JobUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Logger *slog.Logger
	Jobs   usecase.JobUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		logger: params.Logger,
		jobs:   params.Jobs,
	}
}

// HandlePush acknowledges with 200 unless the run failed in a way a redelivery
// could fix, in which case 503 asks Pub/Sub to retry. A payload naming no job
// is INVALID_TRIGGER.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return domainerrors.ErrInvalidTrigger.WithDetails("malformed push envelope")
	}

	job, err := jobFromMessage(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Invalid trigger payload",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return domainerrors.ErrInvalidTrigger.WithDetails(err.Error())
	}

	// Attribute set by the publisher wins over the middleware's ID
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, h.logger.With(slog.String("request_id", requestID)))
	}
	reqLogger := deliverycontext.LoggerOrDefault(ctx, h.logger).With(
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("job", job),
	)

	reqLogger.Info("[Worker] Processing job trigger")

	run, err := runDetached(ctx, h.jobs, job)
	switch {
	case err == nil:
		reqLogger.Info("[Worker] Job trigger finished", slog.String("run_id", run.ID))

		return c.NoContent(http.StatusOK)
	case errors.Is(err, entity.ErrUnknownJob):
		reqLogger.Error("[Worker] Unknown job, dropping message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	case errors.Is(err, usecase.ErrJobAlreadyRunning):
		reqLogger.Warn("[Worker] Job already running, dropping duplicate trigger")

		return c.NoContent(http.StatusOK)
	default:
		reqLogger.Error("[Worker] Job failed, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}
}

// jobFromMessage reads the job name from the JSON data, falling back to the
// "job" attribute.
func jobFromMessage(msg *PubSubMessage) (string, error) {
	if msg.Message.Data != "" {
		data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
		if err != nil {
			return "", errors.Wrap(err, "decode message data")
		}

		var payload TriggerPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return "", errors.Wrap(err, "parse trigger payload")
		}
		if job := strings.TrimSpace(payload.Job); job != "" {
			return job, nil
		}
	}

	if job := strings.TrimSpace(msg.Message.Attributes["job"]); job != "" {
		return job, nil
	}

	return "", errors.New("trigger names no job")
}
