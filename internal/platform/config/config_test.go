package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/finops")
	t.Setenv("IS_PRODUCTION", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/finops", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, 128, cfg.TemplateCacheSize)
	assert.Equal(t, 5*time.Minute, cfg.TemplateCacheTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("TEMPLATE_CACHE_SIZE", "0")
	t.Setenv("TEMPLATE_CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, 0, cfg.TemplateCacheSize)
	assert.Equal(t, 30*time.Second, cfg.TemplateCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoadConfig_InvalidRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "RATE_LIMIT")
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "JWT_SECRET")
}
