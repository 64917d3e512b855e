package config

import (
	"strings"

	"devotional/internal/domain/constants"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// applyDefaults fills zero values left by the YAML file and environment.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.Env.Env) == "" {
		cfg.Env.Env = constants.EnvDevelop
	}
	if strings.TrimSpace(cfg.Store.Driver) == "" {
		cfg.Store.Driver = constants.StoreDriverFirestore
	}

	if cfg.Push.MulticastLimit == 0 {
		cfg.Push.MulticastLimit = defaultMulticastLimit
	}
	if cfg.Push.SendsPerSecond == 0 {
		cfg.Push.SendsPerSecond = defaultSendsPerSecond
	}
	if cfg.Push.Burst == 0 {
		cfg.Push.Burst = 1
	}

	if cfg.Dispatch.Concurrency == 0 {
		cfg.Dispatch.Concurrency = defaultDispatchConcurrency
	}
	if cfg.Dispatch.Timeout == 0 {
		cfg.Dispatch.Timeout = defaultDispatchTimeout
	}
	if cfg.Dispatch.DefaultLanguage == "" {
		cfg.Dispatch.DefaultLanguage = defaultDefaultLanguage
	}
	if cfg.Dispatch.NotificationType == "" {
		cfg.Dispatch.NotificationType = constants.NotificationTypeDailyDevotional
	}

	if cfg.Retention.UserStaleAfter == 0 {
		cfg.Retention.UserStaleAfter = defaultUserStaleAfter
	}
	if cfg.Retention.TokenMaxAge == 0 {
		cfg.Retention.TokenMaxAge = defaultTokenMaxAge
	}
	if cfg.Retention.BatchFlushThreshold == 0 {
		cfg.Retention.BatchFlushThreshold = defaultBatchFlushThreshold
	}
	if cfg.Retention.Timeout == 0 {
		cfg.Retention.Timeout = defaultRetentionTimeout
	}
}

// Validate checks struct constraints and cross-field rules.
func (cfg *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	if cfg.Retention.BatchFlushThreshold > maxBatchOperations {
		return errors.Errorf("retention.batchFlushThreshold %d exceeds store limit %d",
			cfg.Retention.BatchFlushThreshold, maxBatchOperations)
	}

	if cfg.Store.Driver == constants.StoreDriverMemory && cfg.Env.Env == constants.EnvProduction {
		return errors.New("store.driver memory is for local runs only")
	}

	if cfg.Store.Driver == constants.StoreDriverPostgres && cfg.Store.Postgres == nil {
		return errors.New("store.postgres is required for the postgres driver")
	}

	return nil
}
