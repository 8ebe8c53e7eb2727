package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10000, cfg.MaxEventCapacity)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 600, cfg.RateLimitPerMinute)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.NotEmpty(t, cfg.DBUrl)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("MAX_EVENT_CAPACITY", "500")
	t.Setenv("REGISTRATION_MAX_RETRIES", "0")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("EMAIL_PROVIDER", "ses")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DBUrl)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 500, cfg.MaxEventCapacity)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.True(t, cfg.Email.SESInsecureSkipVerify)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero capacity", "MAX_EVENT_CAPACITY", "0"},
		{"negative retries", "REGISTRATION_MAX_RETRIES", "-1"},
		{"unknown provider", "EMAIL_PROVIDER", "smtp"},
		{"bad duration", "REQUEST_TIMEOUT", "soon"},
		{"not a number", "MAX_EVENT_CAPACITY", "lots"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "production")
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(&Config{Environment: "production", LogLevel: tt.level})
			require.NotNil(t, logger)
			assert.True(t, logger.Enabled(t.Context(), tt.want))
			assert.False(t, logger.Enabled(t.Context(), tt.want-1))
		})
	}
}
