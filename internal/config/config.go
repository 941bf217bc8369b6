package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the immutable process configuration, read once at startup and
// passed by reference into each service.
type Config struct {
	Addr       string
	PGDSN      string
	AuthSecret string
}

// Load reads configuration from a .env file (if present) and the environment.
// A missing data-store DSN or signing secret is a startup error; the caller
// must treat it as fatal and not serve in a degraded state.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:       getEnv("RESQLINE_ADDR", ":8080"),
		PGDSN:      os.Getenv("RESQLINE_PG_DSN"),
		AuthSecret: os.Getenv("RESQLINE_AUTH_SECRET"),
	}

	if cfg.PGDSN == "" {
		return nil, fmt.Errorf("RESQLINE_PG_DSN is required")
	}
	if cfg.AuthSecret == "" {
		return nil, fmt.Errorf("RESQLINE_AUTH_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
