package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1MB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// App holds client-facing URLs used for redirects
	App *AppConfig `json:"app" yaml:"app"`

	// LLM configuration for scoring, email analysis and form filling
	LLM *LLMConfig `json:"llm" yaml:"llm"`

	// Gmail OAuth configuration for the email source
	Gmail *GmailConfig `json:"gmail" yaml:"gmail"`

	// Search configuration for the aggregation pipeline
	Search *SearchConfig `json:"search" yaml:"search"`

	// PropertyRegistry configures where jurisdiction lookups go
	PropertyRegistry *PropertyRegistryConfig `json:"propertyRegistry" yaml:"propertyRegistry"`

	// Redis configuration shared by the rate limiter and score cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// RateLimit configuration for per-caller request budgets
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// ScoreCache configuration for memoized match scores
	ScoreCache *ScoreCacheConfig `json:"scoreCache" yaml:"scoreCache"`

	// Storage configuration for generated claim documents
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Webhook configuration for subscription lifecycle events
	Webhook *WebhookConfig `json:"webhook" yaml:"webhook"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for claim-link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the notifier push endpoint
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// TestRoutes exposes development-only endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AppConfig defines where the mobile and web clients live
type AppConfig struct {
	BaseURL        string `json:"baseUrl" yaml:"baseUrl"`
	DeepLinkScheme string `json:"deepLinkScheme" yaml:"deepLinkScheme"`
}

// LLMConfig defines the reasoning service used for scoring and extraction
type LLMConfig struct {
	APIKey        string        `json:"apiKey" yaml:"apiKey"`
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	PrimaryModel  string        `json:"primaryModel" yaml:"primaryModel"`
	FallbackModel string        `json:"fallbackModel" yaml:"fallbackModel"`
	MaxTokens     int64         `json:"maxTokens" yaml:"maxTokens"`
	Temperature   float64       `json:"temperature" yaml:"temperature"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
}

// GmailConfig defines OAuth client settings for mailbox access
type GmailConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string   `json:"redirectUri" yaml:"redirectUri"`
	Scopes       []string `json:"scopes" yaml:"scopes"`

	// Maximum number of message ids listed per scan
	MaxResults int64 `json:"maxResults" yaml:"maxResults"`

	// Number of listed messages actually fetched and analyzed
	FetchLimit int `json:"fetchLimit" yaml:"fetchLimit"`

	// Maximum plain-text body length sent to the analyzer
	MaxBodyChars int `json:"maxBodyChars" yaml:"maxBodyChars"`

	// Gmail search recency window, e.g. "1y"
	NewerThan string `json:"newerThan" yaml:"newerThan"`

	// Lifetime of an OAuth state parameter
	StateTTL time.Duration `json:"stateTtl" yaml:"stateTtl"`

	// Key signing the OAuth state; falls back to secretKey.access
	StateSecret string `json:"stateSecret" yaml:"stateSecret"`
}

// SearchConfig defines thresholds used by the aggregator
type SearchConfig struct {
	ScoreThreshold     int      `json:"scoreThreshold" yaml:"scoreThreshold"`
	NeutralScore       int      `json:"neutralScore" yaml:"neutralScore"`
	DefaultStates      []string `json:"defaultStates" yaml:"defaultStates"`
	JurisdictionFanout int      `json:"jurisdictionFanout" yaml:"jurisdictionFanout"`
}

// PropertyRegistryConfig defines the jurisdiction lookup backend
type PropertyRegistryConfig struct {
	// Provider type: "sample" for built-in records or "http" for a remote registry
	Provider string        `json:"provider" yaml:"provider"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// RedisConfig defines the shared redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// RateLimitConfig defines per-caller request budgets
type RateLimitConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Store type: "memory" for single instance or "redis" for shared state
	Store    string        `json:"store" yaml:"store"`
	Requests int           `json:"requests" yaml:"requests"`
	Window   time.Duration `json:"window" yaml:"window"`
}

// ScoreCacheConfig defines memoization of match scores
type ScoreCacheConfig struct {
	// Store type: "memory" or "redis"; empty disables caching
	Store string        `json:"store" yaml:"store"`
	TTL   time.Duration `json:"ttl" yaml:"ttl"`
}

// StorageConfig defines the blob bucket for claim documents
type StorageConfig struct {
	// gocloud bucket URL, e.g. file:///var/data/claim-forms, gs://claim-forms, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public base URL prepended to object keys when the bucket cannot sign URLs
	PublicBaseURL string        `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	SignedURLTTL  time.Duration `json:"signedUrlTtl" yaml:"signedUrlTtl"`
}

// WebhookConfig defines the shared secret for subscription events
type WebhookConfig struct {
	Secret string `json:"secret" yaml:"secret"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

	// Expected audience of push OIDC tokens; empty disables verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// WorkerConfig defines the notifier HTTP listener
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// TestRoutesConfig toggles development endpoints such as token issuing
type TestRoutesConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME segments are aligned with existing YAML keys,
	// e.g. GMAIL_CLIENTSECRET -> gmail.clientSecret
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills zero values of optional sections.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Search == nil {
		cfg.Search = &SearchConfig{}
	}
	if cfg.Search.ScoreThreshold == 0 {
		cfg.Search.ScoreThreshold = 30
	}
	if cfg.Search.NeutralScore == 0 {
		cfg.Search.NeutralScore = 50
	}
	if len(cfg.Search.DefaultStates) == 0 {
		cfg.Search.DefaultStates = []string{"CA", "NY", "TX", "FL", "IL"}
	}
	if cfg.Search.JurisdictionFanout == 0 {
		cfg.Search.JurisdictionFanout = 8
	}

	if cfg.Gmail != nil {
		if cfg.Gmail.MaxResults == 0 {
			cfg.Gmail.MaxResults = 50
		}
		if cfg.Gmail.FetchLimit == 0 {
			cfg.Gmail.FetchLimit = 20
		}
		if cfg.Gmail.MaxBodyChars == 0 {
			cfg.Gmail.MaxBodyChars = 5000
		}
		if cfg.Gmail.NewerThan == "" {
			cfg.Gmail.NewerThan = "1y"
		}
		if cfg.Gmail.StateTTL == 0 {
			cfg.Gmail.StateTTL = 10 * time.Minute
		}
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = 8081
	}

	if cfg.TestRoutes != nil && cfg.TestRoutes.TokenTTL == 0 {
		cfg.TestRoutes.TokenTTL = 24 * time.Hour
	}

	if cfg.RateLimit != nil {
		if cfg.RateLimit.Requests == 0 {
			cfg.RateLimit.Requests = 100
		}
		if cfg.RateLimit.Window == 0 {
			cfg.RateLimit.Window = time.Minute
		}
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
