package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.False(t, cfg.AppDebug)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "taskflow.db", cfg.SQLitePath)
	assert.Equal(t, "dev-secret-key", cfg.JWTSecret)
	assert.Equal(t, 24, cfg.JWTExpirationHours)
	assert.Equal(t, "http://localhost:3000", cfg.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("ALLOWED_ORIGINS", "https://taskflow.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.True(t, cfg.AppDebug)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 2, cfg.JWTExpirationHours)
	assert.Equal(t, "https://taskflow.example.com", cfg.AllowedOrigins)
}

func TestInvalidIntFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_HOURS", "not-a-number")

	cfg := Load()
	assert.Equal(t, 24, cfg.JWTExpirationHours)
}
