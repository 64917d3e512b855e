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
)

type retentionService struct {
	logger   *slog.Logger
	cfg      config.RetentionConfig
	users    repository.UserRepository
	settings repository.SettingsRepository
	tokens   repository.TokenRepository
	batches  repository.BatchWriter
	push     service.PushService
}

// RetentionServiceParams holds dependencies for the retention engine
type RetentionServiceParams struct {
	fx.In

	Logger   *slog.Logger
	Config   *config.Config
	Users    repository.UserRepository
	Settings repository.SettingsRepository
	Tokens   repository.TokenRepository
	Batches  repository.BatchWriter
	Push     service.PushService
}

// NewRetentionService creates a new retention engine
func NewRetentionService(params RetentionServiceParams) usecase.RetentionUsecase {
	return &retentionService{
		logger:   params.Logger.With(slog.String("job", string(entity.JobRetention))),
		cfg:      params.Config.Retention,
		users:    params.Users,
		settings: params.Settings,
		tokens:   params.Tokens,
		batches:  params.Batches,
		push:     params.Push,
	}
}

// ownedToken is a token value together with the user it belongs to.
type ownedToken struct {
	userID string
	token  string
}

// RunRetention runs the three phases strictly in order. Each phase enumerates
// users again so it only sees what the previous phase left behind.
func (s *retentionService) RunRetention(ctx context.Context, now time.Time) (*entity.RetentionReport, error) {
	now = now.UTC()
	report := &entity.RetentionReport{RunAt: now}

	phases := []struct {
		name string
		run  func(context.Context, time.Time, []string, *entity.RetentionReport)
	}{
		{name: "eviction", run: s.evictStaleUsers},
		{name: "pruning", run: s.pruneStaleTokens},
		{name: "validation", run: s.validateTokens},
	}

	for _, phase := range phases {
		userIDs, err := s.users.ListUserIDs(ctx)
		if err != nil {
			return report, errors.Wrapf(err, "failed to enumerate users for %s", phase.name)
		}

		s.logger.Info("[Retention] Phase started",
			slog.String("phase", phase.name),
			slog.Int("users", len(userIDs)),
		)
		phase.run(ctx, now, userIDs, report)

		if err := ctx.Err(); err != nil {
			return report, errors.Wrapf(err, "retention interrupted during %s", phase.name)
		}
	}

	s.logger.Info("[Retention] Run finished",
		slog.Int("usersEvicted", report.UsersEvicted),
		slog.Int("usersUnreadable", report.UsersUnreadable),
		slog.Int("staleTokensPruned", report.StaleTokensPruned),
		slog.Int("tokensProbed", report.TokensProbed),
		slog.Int("invalidTokensFound", report.InvalidTokensFound),
		slog.Int("probeChunksFailed", report.ProbeChunksFailed),
	)

	return report, nil
}

// evictStaleUsers removes users without settings or whose settings were not
// touched within the configured window, including every token they own.
func (s *retentionService) evictStaleUsers(ctx context.Context, now time.Time, userIDs []string, report *entity.RetentionReport) {
	logger := s.logger.With(slog.String("phase", "eviction"))
	deleter := newBatchDeleter(s.batches, s.cfg.BatchFlushThreshold, logger)

	for _, userID := range userIDs {
		if ctx.Err() != nil {
			break
		}

		settings, err := s.settings.FindSettings(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrSettingsNotFound) {
			logger.Error("[Retention] Failed to read settings", slog.String("userID", userID), slog.Any("error", err))
			report.UsersUnreadable++

			continue
		}
		if settings != nil && !settings.IsStale(now, s.cfg.UserStaleAfter) {
			continue
		}

		tokens, err := s.tokens.FindTokensByUser(ctx, userID)
		if err != nil {
			logger.Error("[Retention] Failed to read tokens of stale user", slog.String("userID", userID), slog.Any("error", err))
			report.UsersUnreadable++

			continue
		}

		logger.Info("[Retention] Evicting stale user",
			slog.String("userID", userID),
			slog.Bool("hasSettings", settings != nil),
			slog.Int("tokens", len(tokens)),
		)
		deleter.EvictUser(ctx, userID, entity.TokenValues(tokens))
		report.UsersEvicted++
	}

	report.Eviction = deleter.Close(ctx)
}

// pruneStaleTokens deletes tokens registered longer ago than the max token age.
func (s *retentionService) pruneStaleTokens(ctx context.Context, now time.Time, userIDs []string, report *entity.RetentionReport) {
	logger := s.logger.With(slog.String("phase", "pruning"))
	deleter := newBatchDeleter(s.batches, s.cfg.BatchFlushThreshold, logger)

	for _, userID := range userIDs {
		if ctx.Err() != nil {
			break
		}

		tokens, err := s.tokens.FindTokensByUser(ctx, userID)
		if err != nil {
			logger.Error("[Retention] Failed to read tokens", slog.String("userID", userID), slog.Any("error", err))
			report.UsersUnreadable++

			continue
		}

		for _, token := range tokens {
			if !token.OlderThan(now, s.cfg.TokenMaxAge) {
				continue
			}

			deleter.DeleteToken(ctx, userID, token.Token)
			report.StaleTokensPruned++
		}
	}

	report.Pruning = deleter.Close(ctx)
}

// validateTokens sends a silent probe to every remaining token and deletes
// each one the provider reports as unsuccessful.
func (s *retentionService) validateTokens(ctx context.Context, now time.Time, userIDs []string, report *entity.RetentionReport) {
	logger := s.logger.With(slog.String("phase", "validation"))

	var owned []ownedToken
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return
		}

		tokens, err := s.tokens.FindTokensByUser(ctx, userID)
		if err != nil {
			logger.Error("[Retention] Failed to read tokens", slog.String("userID", userID), slog.Any("error", err))
			report.UsersUnreadable++

			continue
		}
		for _, token := range tokens {
			owned = append(owned, ownedToken{userID: userID, token: token.Token})
		}
	}

	deleter := newBatchDeleter(s.batches, s.cfg.BatchFlushThreshold, logger)
	data := map[string]string{
		"type":      constants.NotificationTypeCleanupCheck,
		"timestamp": now.Format(time.RFC3339),
	}

	for _, chunk := range util.Chunk(owned, s.push.MaxTokensPerCall()) {
		if ctx.Err() != nil {
			break
		}

		values := make([]string, len(chunk))
		for i, item := range chunk {
			values[i] = item.token
		}

		report.ProbeChunks++
		report.TokensProbed += len(chunk)

		result, err := s.push.SendMulticast(ctx, &entity.PushMessage{
			Tokens: values,
			Data:   data,
			Silent: true,
			DryRun: s.cfg.ProbeDryRun,
		})
		if err != nil {
			report.ProbeChunksFailed++
			logger.Error("[Retention] Probe chunk failed, tokens left unvalidated",
				slog.Int("tokens", len(chunk)),
				slog.Any("error", err),
			)

			continue
		}

		for i, outcome := range result.Outcomes {
			if outcome.Success || i >= len(chunk) {
				continue
			}

			logger.Debug("[Retention] Invalid token",
				slog.String("userID", chunk[i].userID),
				slog.String("token", util.TokenPrefix(chunk[i].token)),
				slog.String("failure", string(outcome.Failure)),
			)
			deleter.DeleteToken(ctx, chunk[i].userID, chunk[i].token)
			report.InvalidTokensFound++
		}
	}

	report.Validation = deleter.Close(ctx)
}
