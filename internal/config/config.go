package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Name string
		Env  string
	}

	API struct {
		Host string
		Port string
	}

	Log struct {
		Level string
	}

	Twilio struct {
		AccountSID      string
		AuthToken       string
		FromNumber      string
		VerifyOnStartup bool
	}
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "sms-connector")
	cfg.App.Env = getEnv("APP_ENV", "development")

	// API
	cfg.API.Host = getEnv("API_HOST", "0.0.0.0")
	cfg.API.Port = getEnv("API_PORT", "8080")

	// Logging
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")

	// Twilio credentials
	cfg.Twilio.AccountSID = getEnv("TWILIO_ACCOUNT_SID", "")
	cfg.Twilio.AuthToken = getEnv("TWILIO_AUTH_TOKEN", "")
	cfg.Twilio.FromNumber = getEnv("SMS_FROM_NUMBER", "")
	cfg.Twilio.VerifyOnStartup = isTruthy(os.Getenv("TWILIO_VERIFY_ON_STARTUP"))

	return cfg
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
