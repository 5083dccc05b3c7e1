package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("TOKEN_SECRET_KEY", "secret")
	t.Setenv("TOKEN_SALT", "email-confirm")
	t.Setenv("MAIL_DEFAULT_SENDER", "noreply@example.com")
}

func TestFromEnv_Defaults(t *testing.T) {
	setRequired(t)

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, time.Hour, cfg.Token.MaxAge)
	assert.Equal(t, 10, cfg.Password.BcryptCost)
	assert.Equal(t, "localhost", cfg.Mail.Server)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.True(t, cfg.Mail.UseTLS)
	assert.Equal(t, "noreply@example.com", cfg.Mail.DefaultSender)
}

func TestFromEnv_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_MAX_AGE", "1800")
	t.Setenv("MAIL_PORT", "2525")
	t.Setenv("MAIL_USE_TLS", "false")
	t.Setenv("PASSWORD_BCRYPT_COST", "12")

	cfg := FromEnv()

	assert.Equal(t, 30*time.Minute, cfg.Token.MaxAge)
	assert.Equal(t, 2525, cfg.Mail.Port)
	assert.False(t, cfg.Mail.UseTLS)
	assert.Equal(t, 12, cfg.Password.BcryptCost)
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_MAX_AGE", "soon")
	t.Setenv("MAIL_PORT", "smtp")
	t.Setenv("MAIL_USE_TLS", "maybe")

	cfg := FromEnv()

	assert.Equal(t, time.Hour, cfg.Token.MaxAge)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.True(t, cfg.Mail.UseTLS)
}

func TestFromEnv_DurationString(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_MAX_AGE", "90m")

	assert.Equal(t, 90*time.Minute, FromEnv().Token.MaxAge)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"missing secret", "TOKEN_SECRET_KEY", "", "TOKEN_SECRET_KEY is required"},
		{"missing salt", "TOKEN_SALT", "", "TOKEN_SALT is required"},
		{"missing sender", "MAIL_DEFAULT_SENDER", "", "MAIL_DEFAULT_SENDER is required"},
		{"zero max age", "TOKEN_MAX_AGE", "0", "TOKEN_MAX_AGE must be positive"},
		{"negative max age", "TOKEN_MAX_AGE", "-5", "TOKEN_MAX_AGE must be positive"},
		{"negative duration max age", "TOKEN_MAX_AGE", "-1h", "TOKEN_MAX_AGE must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			err := FromEnv().Validate()
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
