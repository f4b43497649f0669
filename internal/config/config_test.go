package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DevelopmentDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("GENERATOR", GeneratorStub)
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.StubDelay)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoad_GeneratorSelection(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	t.Setenv("GENERATOR", "Gemini")
	t.Setenv("GEMINI_API_KEY", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("GEMINI_API_KEY", "key")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, GeneratorGemini, cfg.Generator)

	t.Setenv("GENERATOR", "markov")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_ProductionRequirements(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("GENERATOR", GeneratorStub)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://grants.example.org, https://www.grants.example.org")

	t.Setenv("SESSION_SECRET", "short")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"https://grants.example.org", "https://www.grants.example.org"}, cfg.AllowedOrigins)

	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	_, err = Load()
	assert.Error(t, err)
}
