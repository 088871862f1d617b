package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Make sure nothing from the host environment leaks into the assertions.
	for _, key := range []string{
		"PORT", "DATABASE_URL", "DATABASE_NAME", "ALLOWED_ORIGINS",
		"REDIS_ADDR", "OTEL_SERVICE_NAME", "REQUEST_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "umkm_commerce", cfg.DatabaseName)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "commerce-api", cfg.ServiceName)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "shop")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("REQUEST_TIMEOUT", "3")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "shop", cfg.DatabaseName)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
