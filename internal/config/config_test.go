package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/scheduler")
	t.Setenv("JWT_SECRET", "secret")

	cfg := Load()
	assert.Equal(t, "postgres://localhost/scheduler", cfg.DatabaseURL)
	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, "lecture-scheduler", cfg.JWTIssuer)
	assert.Equal(t, int64(3600), cfg.TokenTTLSeconds)
	assert.Equal(t, 5, cfg.MetricsSampleSeconds)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/scheduler")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ISSUER", "dhbw")
	t.Setenv("TOKEN_TTL_SECONDS", "600")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()
	assert.Equal(t, "dhbw", cfg.JWTIssuer)
	assert.Equal(t, int64(600), cfg.TokenTTLSeconds)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsOrigins)
}

func TestLoadIgnoresUnparsableInt(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/scheduler")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TOKEN_TTL_SECONDS", "one hour")

	cfg := Load()
	assert.Equal(t, int64(3600), cfg.TokenTTLSeconds)
}

func TestLoadPanicsOnMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	assert.Panics(t, func() { Load() })
}
