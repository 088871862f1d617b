package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting the service reads from the environment.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// DatabaseURL is the MongoDB connection string. Empty means the service
	// runs on the in-memory catalog, the mode local frontend development uses.
	DatabaseURL  string
	DatabaseName string

	// AllowedOrigins for CORS. "*" allows any origin.
	AllowedOrigins []string

	// RedisAddr enables the category cache when non-empty.
	RedisAddr string

	ServiceName    string
	RequestTimeout time.Duration
}

// Load reads .env (when present) and the process environment, applying
// defaults for everything unset.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	return Config{
		Port:           getenv("PORT", "8000"),
		DatabaseURL:    getenv("DATABASE_URL", ""),
		DatabaseName:   getenv("DATABASE_NAME", "umkm_commerce"),
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "*")),
		RedisAddr:      getenv("REDIS_ADDR", ""),
		ServiceName:    getenv("OTEL_SERVICE_NAME", "commerce-api"),
		RequestTimeout: time.Duration(getenvInt("REQUEST_TIMEOUT", 10)) * time.Second,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using fallback",
			"key", key, "value", v, "fallback", fallback)
		return fallback
	}
	return n
}

// splitList splits a comma-separated env value, dropping empty entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
