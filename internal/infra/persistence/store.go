// Package persistence selects the record store driver configured under store.driver.
package persistence

import (
	"context"
	"log/slog"

	"devotional/config"
	"devotional/internal/domain/constants"
	"devotional/internal/domain/repository"
	"devotional/internal/infra/firebaseapp"
	fsstore "devotional/internal/infra/persistence/firestore"
	"devotional/internal/infra/persistence/memory"
	"devotional/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of every store driver
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App
}

// Result exposes the selected driver through the repository interfaces
type Result struct {
	fx.Out

	Users    repository.UserRepository
	Settings repository.SettingsRepository
	Tokens   repository.TokenRepository
	Batches  repository.BatchWriter
}

// NewRepositories opens the configured record store
func NewRepositories(params Params) (Result, error) {
	driver := params.Config.Store.Driver

	switch driver {
	case constants.StoreDriverFirestore:
		client, err := firebaseapp.NewFirestoreClient(firebaseapp.FirestoreParams{
			Lifecycle: params.Lifecycle,
			Ctx:       params.Ctx,
			App:       params.App,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		params.Logger.Info("[Store] Using Firestore record store")

		return Result{
			Users:    fsstore.NewUserRepository(client),
			Settings: fsstore.NewSettingsRepository(client),
			Tokens:   fsstore.NewTokenRepository(client),
			Batches:  fsstore.NewBatchWriter(client),
		}, nil

	case constants.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		params.Logger.Info("[Store] Using PostgreSQL record store")

		return Result{
			Users:    postgres.NewUserRepository(db),
			Settings: postgres.NewSettingsRepository(db),
			Tokens:   postgres.NewTokenRepository(db),
			Batches:  postgres.NewBatchWriter(db),
		}, nil

	case constants.StoreDriverMemory:
		params.Logger.Warn("[Store] Using in-memory record store, data is lost on exit")

		return FromMemory(memory.NewStore()), nil

	default:
		return Result{}, errors.Errorf("unknown store driver %q", driver)
	}
}

// FromMemory exposes an in-memory store through the repository interfaces.
func FromMemory(store *memory.Store) Result {
	return Result{
		Users:    store,
		Settings: store,
		Tokens:   store,
		Batches:  store,
	}
}
