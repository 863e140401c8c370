package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Clear any keys inherited from the runner's environment; empty values
	// count as unset.
	for _, key := range []string{
		"SERVER_PORT", "MYSQL_DSN", "REDIS_ADDR", "REDIS_DB", "REDIS_PASSWORD",
		"SECRET_KEY", "TOKEN_TTL_SECONDS", "SWAGGER_HOST",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "change-me", cfg.SecretKey)
	assert.Equal(t, 600*time.Second, cfg.TokenTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("TOKEN_TTL_SECONDS", "120")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "s3cr3t", cfg.SecretKey)
	assert.Equal(t, 120*time.Second, cfg.TokenTTL)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoadIgnoresBadInt(t *testing.T) {
	t.Setenv("TOKEN_TTL_SECONDS", "not-a-number")

	cfg := Load()
	assert.Equal(t, 600*time.Second, cfg.TokenTTL)
}
