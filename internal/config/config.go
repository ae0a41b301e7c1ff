package config

import (
	"log/slog"
	"os"
	"time"
)

// Config holds server configuration loaded from the environment.
type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
	TMDBAPIKey  string
	PublicURL   string
	UploadDir   string
}

// Load reads configuration from the environment with development fallbacks.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/favmov?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:   30 * 24 * time.Hour,
		TMDBAPIKey:  getEnv("TMDB_API_KEY", ""),
		PublicURL:   getEnv("API_URL", "http://localhost:3000"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
