package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://hr:hr@localhost:5432/contracts")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("IDENTITY_BASE_URL", "http://identity:8081/")
	t.Setenv("MESSAGE_BASE_URL", "http://messages:8083")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8082, cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "http://identity:8081", cfg.Clients.IdentityBaseURL)
	assert.Equal(t, 5*time.Second, cfg.Clients.Timeout)
	assert.Equal(t, NotifyTransportHTTP, cfg.Notify.Transport)
	assert.Equal(t, "HR", cfg.Contracts.HRTarget)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://hr.example.com, https://admin.example.com,")
	t.Setenv("NOTIFY_TRANSPORT", "NATS")
	t.Setenv("NATS_URL", "nats://nats:4222")
	t.Setenv("CLIENT_TIMEOUT", "1500ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, []string{"https://hr.example.com", "https://admin.example.com"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, NotifyTransportNATS, cfg.Notify.Transport)
	assert.Equal(t, "messages.send", cfg.Notify.NATSSubject)
	assert.Equal(t, 1500*time.Millisecond, cfg.Clients.Timeout)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		unset string
		env   map[string]string
		want  string
	}{
		{name: "missing dsn", unset: "DB_DSN", want: "DB_DSN is required"},
		{name: "missing secret", unset: "JWT_ACCESS_SECRET", want: "JWT_ACCESS_SECRET is required"},
		{name: "missing identity", unset: "IDENTITY_BASE_URL", want: "IDENTITY_BASE_URL is required"},
		{name: "unknown transport", env: map[string]string{"NOTIFY_TRANSPORT": "smtp"}, want: "unknown NOTIFY_TRANSPORT"},
		{name: "nats without url", env: map[string]string{"NOTIFY_TRANSPORT": "nats"}, want: "NATS_URL is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			if tc.unset != "" {
				t.Setenv(tc.unset, "")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList("  "))
	assert.Equal(t, []string{"a", "b"}, parseList("a, ,b"))
}
