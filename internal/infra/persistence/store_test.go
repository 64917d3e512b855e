package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"devotional/config"
	"devotional/internal/domain/constants"
	"devotional/internal/domain/entity"
	"devotional/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, driver string) Params {
	cfg := &config.Config{}
	cfg.Store.Driver = driver

	return Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Ctx:       context.Background(),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewRepositories_Memory(t *testing.T) {
	result, err := NewRepositories(newParams(t, constants.StoreDriverMemory))
	require.NoError(t, err)

	ids, err := result.Users.ListUserIDs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NotNil(t, result.Batches.NewBatch())
}

func TestNewRepositories_UnknownDriver(t *testing.T) {
	_, err := NewRepositories(newParams(t, "cassandra"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cassandra")
}

func TestFromMemory_SharesOneStore(t *testing.T) {
	store := memory.NewStore()
	store.PutSettings(&entity.NotificationSettings{UserID: "u1"})

	result := FromMemory(store)

	settings, err := result.Settings.FindSettings(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", settings.UserID)
}
