package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/surety_risk_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.True(t, cfg.AuthEnabled)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, 50, cfg.BatchMaxSize)
	assert.Equal(t, 4, cfg.BatchConcurrency)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.PolicyFile)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("AUTH_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("BATCH_MAX_SIZE", "10")
	t.Setenv("WRITE_TIMEOUT", "1m")
	t.Setenv("POLICY_FILE", "/etc/surety/policy.yaml")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10, cfg.BatchMaxSize)
	assert.Equal(t, time.Minute, cfg.WriteTimeout)
	assert.Equal(t, "/etc/surety/policy.yaml", cfg.PolicyFile)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")

	_, err := config.LoadConfig()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-real-production-secret")
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction)
}

func TestLoadConfig_InvalidBatchSettings(t *testing.T) {
	t.Setenv("BATCH_CONCURRENCY", "0")

	_, err := config.LoadConfig()
	assert.ErrorContains(t, err, "BATCH_CONCURRENCY")
}
