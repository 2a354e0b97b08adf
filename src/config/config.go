package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Port               string
	StorageBackend     string
	DatabaseURL        string
	SQLitePath         string
	JWTSecret          string
	TokenTTL           time.Duration
	CORSAllowedOrigins []string
	LogLevel           string
}

func Load() Config {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		StorageBackend:     getEnv("STORAGE_BACKEND", BackendPostgres),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		SQLitePath:         getEnv("SQLITE_PATH", "expenses.db"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		TokenTTL:           getDurationEnv("TOKEN_TTL", time.Hour),
		CORSAllowedOrigins: splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	switch cfg.StorageBackend {
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is required when STORAGE_BACKEND is postgres")
		}
	case BackendSQLite:
	default:
		log.Fatalf("unsupported storage backend: %s", cfg.StorageBackend)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}

func splitOrigins(value string) []string {
	if value == "" {
		return nil
	}
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
