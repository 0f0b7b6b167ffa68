package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment at startup.
// Nothing else touches os.Getenv after Load returns.
type Config struct {
	FacebookAppID     string
	FacebookAppSecret string
	DatabaseDSN       string
	FrontendURL       string
	Port              string
	Env               string
}

// Load reads .env when present and resolves the configuration.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		FacebookAppID:     os.Getenv("FACEBOOK_APP_ID"),
		FacebookAppSecret: os.Getenv("FACEBOOK_APP_SECRET"),
		DatabaseDSN:       os.Getenv("DATABASE_DSN"),
		FrontendURL:       getenv("FRONTEND_URL", "*"),
		Port:              getenv("PORT", "3000"),
		Env:               os.Getenv("APP_ENV"),
	}

	for _, req := range []struct{ name, value string }{
		{"FACEBOOK_APP_ID", cfg.FacebookAppID},
		{"FACEBOOK_APP_SECRET", cfg.FacebookAppSecret},
		{"DATABASE_DSN", cfg.DatabaseDSN},
	} {
		if req.value == "" {
			return Config{}, fmt.Errorf("missing required environment variable %s", req.name)
		}
	}

	return cfg, nil
}

// Production reports whether internal error details should be hidden from
// responses.
func (c Config) Production() bool {
	return c.Env == "production"
}

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
