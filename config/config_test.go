package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "ENVIRONMENT", "APP_URL", "RATE_LIMIT_RPS", "TRUST_PROXY", "R2_BUCKET_NAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:8080", cfg.AppURL)
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.False(t, cfg.TrustProxy)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.R2Configured())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("APP_URL", "https://deltasylva.com/")
	t.Setenv("RATE_LIMIT_RPS", "5.5")
	t.Setenv("TRUST_PROXY", "yes")
	t.Setenv("R2_ACCOUNT_ID", "acct")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "site")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://deltasylva.com", cfg.AppURL, "trailing slash trimmed")
	assert.Equal(t, 5.5, cfg.RateLimitRPS)
	assert.True(t, cfg.TrustProxy)
	assert.True(t, cfg.R2Configured())
}

func TestGetEnvFloatInvalid(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "fast")
	assert.Equal(t, 20.0, getEnvFloat("RATE_LIMIT_RPS", 20))

	t.Setenv("RATE_LIMIT_RPS", "-1")
	assert.Equal(t, 20.0, getEnvFloat("RATE_LIMIT_RPS", 20))
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true}, {"1", true}, {"on", true},
		{"false", false}, {"0", false}, {"off", false},
		{"maybe", true}, {"", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("FLAG", tt.value)
			assert.Equal(t, tt.want, getEnvBool("FLAG", true))
		})
	}
}
