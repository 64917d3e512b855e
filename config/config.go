package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"devotional/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	defaultMulticastLimit      = 500
	defaultSendsPerSecond      = 20
	defaultDispatchConcurrency = 8
	defaultDispatchTimeout     = 9 * time.Minute
	defaultRetentionTimeout    = 30 * time.Minute
	defaultDefaultLanguage     = "es"
	defaultUserStaleAfter      = 15 * 24 * time.Hour
	defaultTokenMaxAge         = 60 * 24 * time.Hour
	defaultBatchFlushThreshold = 450
	maxBatchOperations         = 500
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase configuration for push delivery and the Firestore record store
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Store selects and configures the record store
	Store StoreConfig `json:"store" yaml:"store"`

	// Push configures the multicast ceiling and provider throttling
	Push PushConfig `json:"push" yaml:"push"`

	// Dispatch configures the hourly evaluator
	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Retention configures the daily retention engine
	Retention RetentionConfig `json:"retention" yaml:"retention"`

	// PubSub configuration for run report publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Trigger configures how the worker authenticates scheduler triggers
	Trigger TriggerConfig `json:"trigger" yaml:"trigger"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID string `json:"projectId" yaml:"projectId"`
	// Empty path falls back to application default credentials
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// StoreConfig selects the record store driver
type StoreConfig struct {
	Driver   string           `json:"driver" yaml:"driver" validate:"oneof=firestore postgres memory"`
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
}

// PushConfig defines provider limits
type PushConfig struct {
	// Maximum tokens per multicast call (FCM allows 500)
	MulticastLimit int `json:"multicastLimit" yaml:"multicastLimit" validate:"min=1,max=500"`

	// Provider calls per second across the process
	SendsPerSecond float64 `json:"sendsPerSecond" yaml:"sendsPerSecond" validate:"gt=0"`

	// Burst allowance for the limiter
	Burst int `json:"burst" yaml:"burst" validate:"min=1"`
}

// DispatchConfig defines the hourly evaluator
type DispatchConfig struct {
	Concurrency      int           `json:"concurrency" yaml:"concurrency" validate:"min=1"`
	Timeout          time.Duration `json:"timeout" yaml:"timeout" validate:"gt=0"`
	DefaultLanguage  string        `json:"defaultLanguage" yaml:"defaultLanguage" validate:"required"`
	NotificationType string        `json:"notificationType" yaml:"notificationType"`
	ImageURL         string        `json:"imageUrl" yaml:"imageUrl" validate:"omitempty,url"`

	// Optional catalog override, e.g. bucket "gs://devotional-content" and key "push/catalog.yaml"
	CatalogBucket string `json:"catalogBucket" yaml:"catalogBucket"`
	CatalogKey    string `json:"catalogKey" yaml:"catalogKey" validate:"required_with=CatalogBucket"`
}

// RetentionConfig defines staleness windows and batching for the retention engine
type RetentionConfig struct {
	// Users whose settings were not modified within this window are evicted
	UserStaleAfter time.Duration `json:"userStaleAfter" yaml:"userStaleAfter" validate:"gt=0"`

	// Tokens registered longer ago than this are pruned
	TokenMaxAge time.Duration `json:"tokenMaxAge" yaml:"tokenMaxAge" validate:"gt=0"`

	// Deletions per write batch before it is flushed
	BatchFlushThreshold int `json:"batchFlushThreshold" yaml:"batchFlushThreshold" validate:"min=1,max=500"`

	// Validate tokens without delivering the probe
	ProbeDryRun bool `json:"probeDryRun" yaml:"probeDryRun"`

	Timeout time.Duration `json:"timeout" yaml:"timeout" validate:"gt=0"`
}

// PubSubConfig defines Pub/Sub configuration for run report publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// TriggerConfig defines trigger authentication for the worker
type TriggerConfig struct {
	// Verify the OIDC token on every trigger route (/jobs and /pubsub/push)
	VerifyAuth bool `json:"verifyAuth" yaml:"verifyAuth"`

	// Expected audience; defaults to the request URL
	Audience string `json:"audience" yaml:"audience"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if !filepath.IsAbs(path) {
				path = filepath.Join(pwd, path)
			}
			searchPaths = append(searchPaths, path)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads config.yaml from the default search paths.
func New() (*Config, error) {
	return NewFromDir("")
}

// NewFromDir loads config.yaml, searching dir first when it is set.
func NewFromDir(dir string) (*Config, error) {
	searchPaths := []string{"config", "../config", "../../config"}
	if dir != "" {
		searchPaths = append([]string{dir}, searchPaths...)
	}

	cfg, err := LoadWithEnv[Config]("config", searchPaths...)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Store.Driver == constants.StoreDriverPostgres && cfg.Store.Postgres != nil {
		// Build replicas from environment variables (STORE_POSTGRES_REPLICAS_0_HOST, STORE_POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Store.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: STORE_POSTGRES_REPLICAS_{index}_{field}
// Example: STORE_POSTGRES_REPLICAS_0_HOST, STORE_POSTGRES_REPLICAS_0_PORT, STORE_POSTGRES_REPLICAS_0_USERNAME
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "STORE_POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
