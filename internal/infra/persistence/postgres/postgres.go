package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"devotional/config"
	"devotional/internal/domain/lifecycle"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// poolWaitWarnThreshold is the cumulative pool wait above which a run is flagged
const poolWaitWarnThreshold = 500 * time.Millisecond

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL record store configured under store.postgres
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Store.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Single-statement reads and updates need no implicit transaction;
		// write batches open their own.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			stats := sqlDB.Stats()
			params.Logger.Info("[Postgres] Record store connected",
				slog.Int("maxOpenConns", stats.MaxOpenConnections),
			)
			checkPoolSize(params.Logger, stats.MaxOpenConnections, params.Config.Dispatch.Concurrency)

			return nil
		},
		OnStop: func(_ context.Context) error {
			logPoolUsage(params.Logger, sqlDB.Stats())

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL")
		},
	})

	return db, nil
}

// checkPoolSize warns when dispatch workers would queue on the pool.
// A zero maxOpen means unlimited.
func checkPoolSize(logger *slog.Logger, maxOpen, workers int) {
	if maxOpen == 0 || maxOpen >= workers {
		return
	}

	logger.Warn("[Postgres] Pool smaller than dispatch concurrency",
		slog.Int("maxOpenConns", maxOpen),
		slog.Int("dispatchConcurrency", workers),
	)
}

// logPoolUsage summarizes how much the run waited on connections
func logPoolUsage(logger *slog.Logger, stats sql.DBStats) {
	attrs := []slog.Attr{
		slog.Int64("waitCount", stats.WaitCount),
		slog.Duration("waitDuration", stats.WaitDuration),
		slog.Int("maxOpenConns", stats.MaxOpenConnections),
		slog.Int64("maxIdleClosed", stats.MaxIdleClosed),
	}

	level := slog.LevelDebug
	if stats.WaitDuration >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}

	logger.LogAttrs(context.Background(), level, "[Postgres] Pool usage", attrs...)
}
