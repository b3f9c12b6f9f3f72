package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Env        string // dev | prod
	Addr       string
	APIBaseURL string // base URL of the storefront REST API
	DBDSN      string // MySQL DSN for the browser-session table

	SessionCookieName string
	SessionTTL        time.Duration
	FlashCookieName   string
	FlashSecret       []byte
	SecureCookies     bool
}

// FromEnv builds the config from environment variables. APP_API_BASE_URL and
// DB_DSN are required; everything else has a dev default.
func FromEnv() (Config, error) {
	apiBase := os.Getenv("APP_API_BASE_URL")
	if apiBase == "" {
		return Config{}, fmt.Errorf("APP_API_BASE_URL environment variable is required")
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return Config{}, fmt.Errorf("DB_DSN environment variable is required")
	}

	env := envOr("APP_ENV", "dev")
	cfg := Config{
		Env:               env,
		Addr:              envOr("APP_ADDR", ":8080"),
		APIBaseURL:        apiBase,
		DBDSN:             dsn,
		SessionCookieName: envOr("SESSION_COOKIE_NAME", "chocoluxe_session"),
		SessionTTL:        envDurationOr("SESSION_TTL_HOURS", 24*7),
		FlashCookieName:   envOr("FLASH_COOKIE_NAME", "chocoluxe_flash"),
		FlashSecret:       []byte(envOr("FLASH_SECRET", "dev-only-flash-secret")),
		SecureCookies:     env == "prod",
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envDurationOr(k string, defHours int) time.Duration {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return time.Duration(defHours) * time.Hour
}
