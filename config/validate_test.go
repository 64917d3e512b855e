package config

import (
	"testing"
	"time"

	"devotional/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, constants.EnvDevelop, cfg.Env.Env)
	assert.Equal(t, constants.StoreDriverFirestore, cfg.Store.Driver)
	assert.Equal(t, 500, cfg.Push.MulticastLimit)
	assert.Equal(t, 450, cfg.Retention.BatchFlushThreshold)
	assert.Equal(t, 15*24*time.Hour, cfg.Retention.UserStaleAfter)
	assert.Equal(t, "es", cfg.Dispatch.DefaultLanguage)
	assert.Equal(t, constants.NotificationTypeDailyDevotional, cfg.Dispatch.NotificationType)

	require.NoError(t, cfg.Validate())
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Retention.UserStaleAfter = 7 * 24 * time.Hour
	cfg.Retention.BatchFlushThreshold = 100
	cfg.applyDefaults()

	assert.Equal(t, 7*24*time.Hour, cfg.Retention.UserStaleAfter)
	assert.Equal(t, 100, cfg.Retention.BatchFlushThreshold)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(cfg *Config) {}},
		{
			name:    "unknown store driver",
			mutate:  func(cfg *Config) { cfg.Store.Driver = "mongo" },
			wantErr: true,
		},
		{
			name:    "postgres driver without connection",
			mutate:  func(cfg *Config) { cfg.Store.Driver = constants.StoreDriverPostgres },
			wantErr: true,
		},
		{
			name:    "multicast limit above provider ceiling",
			mutate:  func(cfg *Config) { cfg.Push.MulticastLimit = 501 },
			wantErr: true,
		},
		{
			name:    "flush threshold above store ceiling",
			mutate:  func(cfg *Config) { cfg.Retention.BatchFlushThreshold = 600 },
			wantErr: true,
		},
		{
			name:    "catalog bucket without key",
			mutate:  func(cfg *Config) { cfg.Dispatch.CatalogBucket = "file:///tmp/catalog" },
			wantErr: true,
		},
		{
			name: "memory store in production",
			mutate: func(cfg *Config) {
				cfg.Env.Env = constants.EnvProduction
				cfg.Store.Driver = constants.StoreDriverMemory
			},
			wantErr: true,
		},
		{
			name:   "memory store in develop",
			mutate: func(cfg *Config) { cfg.Store.Driver = constants.StoreDriverMemory },
		},
		{
			name:    "malformed image url",
			mutate:  func(cfg *Config) { cfg.Dispatch.ImageURL = "not a url" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
