package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-long-enough-test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "./data/spendwise.db", cfg.DBPath)
	assert.Equal(t, "spendwise", cfg.JWTIssuer)
	assert.Equal(t, "spendwise-web", cfg.JWTAudience)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-long-enough-test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com,https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.AllowedOrigins)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("short secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "tiny")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("out-of-range port", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "a-long-enough-test-secret")
		t.Setenv("PORT", "70000")
		_, err := Load()
		assert.Error(t, err)
	})
}
