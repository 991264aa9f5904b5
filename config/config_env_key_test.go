package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"gmail": map[string]any{
			"clientSecret": "",
		},
		"rateLimit": map[string]any{
			"store": "memory",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GMAIL_CLIENTSECRET", want: "gmail.clientSecret"},
		{envKey: "RATELIMIT_STORE", want: "rateLimit.store"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  serviceName: foundmoney
http:
  port: 8080
rateLimit:
  enabled: true
  store: memory
  window: 30s
webhook:
  secret: from-file
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))
	t.Chdir(dir)
	t.Setenv("WEBHOOK_SECRET", "from-env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "foundmoney", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Webhook)
	assert.Equal(t, "from-env", cfg.Webhook.Secret)
	require.NotNil(t, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Gmail:     &GmailConfig{},
		RateLimit: &RateLimitConfig{},
	}

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 30, cfg.Search.ScoreThreshold)
	assert.Equal(t, 50, cfg.Search.NeutralScore)
	assert.Equal(t, []string{"CA", "NY", "TX", "FL", "IL"}, cfg.Search.DefaultStates)
	assert.Equal(t, int64(50), cfg.Gmail.MaxResults)
	assert.Equal(t, 20, cfg.Gmail.FetchLimit)
	assert.Equal(t, 5000, cfg.Gmail.MaxBodyChars)
	assert.Equal(t, "1y", cfg.Gmail.NewerThan)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}
