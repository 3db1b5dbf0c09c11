package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Discovery configuration for the proximity query
	Discovery *DiscoveryConfig `json:"discovery" yaml:"discovery"`

	// Presence configuration for online/offline tracking
	Presence *PresenceConfig `json:"presence" yaml:"presence"`

	// Chat configuration for realtime messaging
	Chat *ChatConfig `json:"chat" yaml:"chat"`

	// Redis configuration for the realtime feed and ephemeral presence
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for push-notification event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Blob configuration for chat image storage
	Blob *BlobConfig `json:"blob" yaml:"blob"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DiscoveryConfig defines configuration for the nearby-user query.
type DiscoveryConfig struct {
	// Default search radius in kilometers when the client does not specify one
	RadiusKm float64 `json:"radiusKm" yaml:"radiusKm"`

	// Hard cap in kilometers, applied regardless of the requested radius
	MaxDistanceKm float64 `json:"maxDistanceKm" yaml:"maxDistanceKm"`

	// Maximum number of candidates returned per query
	MaxResults int `json:"maxResults" yaml:"maxResults"`

	// Bounded random offset (meters) applied to displayed coordinates.
	// Zero disables fuzzing. Filtering always uses true coordinates.
	FuzzRadiusMeters float64 `json:"fuzzRadiusMeters" yaml:"fuzzRadiusMeters"`
}

// PresenceConfig defines configuration for presence tracking.
type PresenceConfig struct {
	// Interval in seconds for the periodic last-seen re-assertion
	HeartbeatIntervalSec int `json:"heartbeatIntervalSec" yaml:"heartbeatIntervalSec"`

	// Minimum gap in seconds between durable presence writes per user
	HeartbeatMinGapSec int `json:"heartbeatMinGapSec" yaml:"heartbeatMinGapSec"`
}

// ChatConfig defines configuration for realtime messaging.
type ChatConfig struct {
	// Default page size for message history
	HistoryPageSize int `json:"historyPageSize" yaml:"historyPageSize"`

	// Seconds after which an unrenewed typing signal expires
	TypingTimeoutSec int `json:"typingTimeoutSec" yaml:"typingTimeoutSec"`
}

// RedisConfig defines the Redis connection for the realtime layer.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
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

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// BlobConfig defines blob storage for chat images.
type BlobConfig struct {
	// Bucket URL understood by gocloud.dev, e.g. "file:///var/nearnow/chat"
	// or "gs://nearnow-chat-images"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Core defaults, applied when the corresponding config section is absent.
const (
	DefaultRadiusKm             = 25.0
	DefaultMaxDistanceKm        = 100.0
	DefaultMaxResults           = 100
	DefaultFuzzRadiusMeters     = 500.0
	DefaultHeartbeatIntervalSec = 300
	DefaultHeartbeatMinGapSec   = 60
	DefaultHistoryPageSize      = 50
	DefaultTypingTimeoutSec     = 3
)

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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
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
			// Example: REDIS_ADDR -> redis.addr, PUBSUB_TOPICID -> pubsub.topicId
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills absent sections with the documented core defaults.
func applyDefaults(cfg *Config) {
	if cfg.Discovery == nil {
		cfg.Discovery = &DiscoveryConfig{}
	}
	if cfg.Discovery.RadiusKm <= 0 {
		cfg.Discovery.RadiusKm = DefaultRadiusKm
	}
	if cfg.Discovery.MaxDistanceKm <= 0 {
		cfg.Discovery.MaxDistanceKm = DefaultMaxDistanceKm
	}
	if cfg.Discovery.MaxResults <= 0 {
		cfg.Discovery.MaxResults = DefaultMaxResults
	}
	if cfg.Discovery.FuzzRadiusMeters < 0 {
		cfg.Discovery.FuzzRadiusMeters = DefaultFuzzRadiusMeters
	}

	if cfg.Presence == nil {
		cfg.Presence = &PresenceConfig{}
	}
	if cfg.Presence.HeartbeatIntervalSec <= 0 {
		cfg.Presence.HeartbeatIntervalSec = DefaultHeartbeatIntervalSec
	}
	if cfg.Presence.HeartbeatMinGapSec <= 0 {
		cfg.Presence.HeartbeatMinGapSec = DefaultHeartbeatMinGapSec
	}

	if cfg.Chat == nil {
		cfg.Chat = &ChatConfig{}
	}
	if cfg.Chat.HistoryPageSize <= 0 {
		cfg.Chat.HistoryPageSize = DefaultHistoryPageSize
	}
	if cfg.Chat.TypingTimeoutSec <= 0 {
		cfg.Chat.TypingTimeoutSec = DefaultTypingTimeoutSec
	}
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
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

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
