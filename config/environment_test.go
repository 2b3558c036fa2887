package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
	t.Setenv("CONFIG_NAME", "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET_KEY", "0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DBConfig{Driver: "sqlite", URL: "studysnap.db"}, cfg.DB)
	assert.Equal(t, []string{"studysnap-api"}, cfg.JWT.Audience)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "https://api.aimlapi.com", cfg.AI.BaseURL)
	assert.Equal(t, "gpt-3.5-turbo", cfg.AI.Model)
	assert.Equal(t, 2000, cfg.AI.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.AI.Timeout)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_URL", "postgres://localhost/studysnap")
	t.Setenv("JWT_SECRET_KEY", "0123456789abcdef")
	t.Setenv("JWT_AUDIENCE", "web,mobile")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://studysnap.app")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("AI_MAX_TOKENS", "500")
	t.Setenv("AI_TIMEOUT", "15s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, []string{"web", "mobile"}, cfg.JWT.Audience)
	assert.Equal(t, []string{"https://studysnap.app"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 500, cfg.AI.MaxTokens)
	assert.Equal(t, 15*time.Second, cfg.AI.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{}},
		{name: "short secret", env: map[string]string{"JWT_SECRET_KEY": "short"}},
		{name: "bad driver", env: map[string]string{"JWT_SECRET_KEY": "0123456789abcdef", "DB_DRIVER": "mysql"}},
		{name: "bad env", env: map[string]string{"JWT_SECRET_KEY": "0123456789abcdef", "ENV": "staging"}},
		{name: "bad port", env: map[string]string{"JWT_SECRET_KEY": "0123456789abcdef", "PORT": "http"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}
