package impl

import (
	"context"
	"log/slog"
	"time"

	"devotional/config"
	"devotional/internal/domain/constants"
	"devotional/internal/domain/entity"
	"devotional/internal/domain/repository"
	"devotional/internal/domain/service"
	"devotional/internal/usecase"
	"devotional/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type dispatchService struct {
	logger   *slog.Logger
	cfg      config.DispatchConfig
	flushAt  int
	users    repository.UserRepository
	settings repository.SettingsRepository
	tokens   repository.TokenRepository
	batches  repository.BatchWriter
	push     service.PushService
	catalog  service.ContentCatalog
}

// DispatchServiceParams holds dependencies for the dispatch evaluator
type DispatchServiceParams struct {
	fx.In

	Logger   *slog.Logger
	Config   *config.Config
	Users    repository.UserRepository
	Settings repository.SettingsRepository
	Tokens   repository.TokenRepository
	Batches  repository.BatchWriter
	Push     service.PushService
	Catalog  service.ContentCatalog
}

// NewDispatchService creates a new dispatch evaluator
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		logger:   params.Logger.With(slog.String("job", string(entity.JobDispatch))),
		cfg:      params.Config.Dispatch,
		flushAt:  params.Config.Retention.BatchFlushThreshold,
		users:    params.Users,
		settings: params.Settings,
		tokens:   params.Tokens,
		batches:  params.Batches,
		push:     params.Push,
		catalog:  params.Catalog,
	}
}

// RunDispatch evaluates all users concurrently. Each worker only touches its
// own user's records, so outcomes are written to distinct slots and tallied
// after Wait.
func (s *dispatchService) RunDispatch(ctx context.Context, now time.Time) (*entity.DispatchReport, error) {
	now = now.UTC()

	userIDs, err := s.users.ListUserIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate users")
	}

	s.logger.Info("[Dispatch] Evaluating users",
		slog.Int("users", len(userIDs)),
		slog.Time("now", now),
	)

	outcomes := make([]entity.DispatchOutcome, len(userIDs))

	var group errgroup.Group
	group.SetLimit(max(s.cfg.Concurrency, 1))
	for idx, userID := range userIDs {
		group.Go(func() error {
			outcomes[idx] = s.processUser(ctx, now, userID)

			return nil
		})
	}
	_ = group.Wait()

	report := entity.NewDispatchReport(now)
	for _, outcome := range outcomes {
		report.Add(outcome)
	}

	s.logger.Info("[Dispatch] Run finished",
		slog.Int("scanned", report.UsersScanned),
		slog.Int("sent", report.UsersSent),
		slog.Int("sendFailures", report.SendFailures),
		slog.Int("tokensSent", report.TokensSent),
		slog.Int("tokensFailed", report.TokensFailed),
		slog.Int("tokensPruned", report.TokensPruned),
		slog.Any("skipped", report.Skipped),
	)

	return report, nil
}

func (s *dispatchService) processUser(ctx context.Context, now time.Time, userID string) entity.DispatchOutcome {
	outcome := entity.DispatchOutcome{UserID: userID}
	logger := s.logger.With(slog.String("userID", userID))

	settings, err := s.settings.FindSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			logger.Debug("[Dispatch] No notification settings")
			outcome.Reason = entity.SkipNoSettings

			return outcome
		}

		logger.Error("[Dispatch] Failed to read settings", slog.Any("error", err))
		outcome.Reason = entity.SkipStoreError

		return outcome
	}

	decision := entity.Decide(now, settings)
	outcome.Reason = decision.Reason

	switch decision.Reason {
	case entity.SkipNone:
	case entity.SkipInvalidTimezone:
		logger.Warn("[Dispatch] Invalid timezone, skipping", slog.String("timezone", settings.Timezone))

		return outcome
	case entity.SkipInvalidTime:
		logger.Warn("[Dispatch] Malformed notification time, skipping", slog.String("notificationTime", settings.NotificationTime))

		return outcome
	default:
		logger.Debug("[Dispatch] Not eligible",
			slog.String("reason", string(decision.Reason)),
			slog.String("localTime", decision.LocalTime.Format("15:04")),
		)

		return outcome
	}

	tokens, err := s.tokens.FindTokensByUser(ctx, userID)
	if err != nil {
		logger.Error("[Dispatch] Failed to read tokens", slog.Any("error", err))
		outcome.Reason = entity.SkipStoreError

		return outcome
	}
	if len(tokens) == 0 {
		logger.Warn("[Dispatch] Eligible user has no registered tokens")
		outcome.Reason = entity.SkipNoTokens

		return outcome
	}

	s.send(ctx, logger, now, settings, entity.TokenValues(tokens), &outcome)

	return outcome
}

// send delivers the user's single multicast, records the dedup marker on any
// success and prunes tokens the provider reported as permanently invalid.
func (s *dispatchService) send(
	ctx context.Context,
	logger *slog.Logger,
	now time.Time,
	settings *entity.NotificationSettings,
	tokens []string,
	outcome *entity.DispatchOutcome,
) {
	content := s.catalog.Resolve(settings.PreferredLanguage)

	result := &entity.MulticastResult{}
	for _, chunk := range util.Chunk(tokens, s.push.MaxTokensPerCall()) {
		chunkResult, err := s.push.SendMulticast(ctx, s.buildMessage(settings.UserID, content, chunk))
		if err != nil {
			logger.Error("[Dispatch] Multicast send failed",
				slog.Int("tokens", len(chunk)),
				slog.Any("error", err),
			)
			result.FailureCount += len(chunk)

			continue
		}

		result.SuccessCount += chunkResult.SuccessCount
		result.FailureCount += chunkResult.FailureCount
		result.Outcomes = append(result.Outcomes, chunkResult.Outcomes...)
	}

	outcome.SuccessCount = result.SuccessCount
	outcome.FailureCount = result.FailureCount

	for _, failed := range result.Outcomes {
		if !failed.Success {
			logger.Warn("[Dispatch] Token send failed",
				slog.String("token", util.TokenPrefix(failed.Token)),
				slog.String("failure", string(failed.Failure)),
			)
		}
	}

	if result.SuccessCount > 0 {
		outcome.Sent = true
		if err := s.settings.UpdateLastSent(ctx, settings.UserID, now); err != nil {
			logger.Error("[Dispatch] Failed to record last sent date", slog.Any("error", err))
			outcome.MarkerFailed = true
		}
	} else {
		outcome.SendFailed = true
	}

	invalid := result.InvalidTokens()
	if len(invalid) == 0 {
		logger.Info("[Dispatch] Notification sent",
			slog.String("language", content.Language),
			slog.Int("success", result.SuccessCount),
			slog.Int("failure", result.FailureCount),
		)

		return
	}

	deleter := newBatchDeleter(s.batches, s.flushAt, logger)
	for _, token := range invalid {
		deleter.DeleteToken(ctx, settings.UserID, token)
	}
	stats := deleter.Close(ctx)
	outcome.TokensPruned = stats.Deleted

	logger.Info("[Dispatch] Notification sent",
		slog.String("language", content.Language),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
		slog.Int("pruned", stats.Deleted),
	)
}

func (s *dispatchService) buildMessage(userID string, content entity.LocalizedContent, tokens []string) *entity.PushMessage {
	return &entity.PushMessage{
		Tokens:      tokens,
		Title:       content.Title,
		Body:        content.Body,
		ImageURL:    content.ImageURL,
		ClickAction: constants.FlutterClickAction,
		Data: map[string]string{
			"userId":       userID,
			"type":         s.cfg.NotificationType,
			"devotionalId": constants.DefaultDevotionalID,
			"click_action": constants.FlutterClickAction,
		},
	}
}
