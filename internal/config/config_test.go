package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("SMS_FROM_NUMBER", "")
	t.Setenv("TWILIO_VERIFY_ON_STARTUP", "")
	t.Setenv("API_HOST", "")
	t.Setenv("API_PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := New()

	assert.Equal(t, "sms-connector", cfg.App.Name)
	assert.Equal(t, "0.0.0.0", cfg.API.Host)
	assert.Equal(t, "8080", cfg.API.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Twilio.AccountSID)
	assert.False(t, cfg.Twilio.VerifyOnStartup)
}

func TestNew_TwilioValues(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "tok")
	t.Setenv("SMS_FROM_NUMBER", "+15550001111")
	t.Setenv("TWILIO_VERIFY_ON_STARTUP", "true")

	cfg := New()

	assert.Equal(t, "AC123", cfg.Twilio.AccountSID)
	assert.Equal(t, "tok", cfg.Twilio.AuthToken)
	assert.Equal(t, "+15550001111", cfg.Twilio.FromNumber)
	assert.True(t, cfg.Twilio.VerifyOnStartup)
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "yes", "Y", "on", " on "} {
		assert.True(t, isTruthy(v), v)
	}
	for _, v := range []string{"", "0", "false", "off", "no", "maybe"} {
		assert.False(t, isTruthy(v), v)
	}
}
