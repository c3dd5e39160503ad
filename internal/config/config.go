package config

import (
	"os"
	"strconv"

	"cafe-backend/internal/logging"
)

type Config struct {
	HTTPPort        string
	DatabaseDSN     string
	JWTSecret       string
	CORSOrigins     string
	DefaultCurrency string
	ReportTopItems  int // top-N ranking size for sales reports
	AdminEmail      string
	AdminPassword   string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=cafe port=5432 sslmode=disable"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		CORSOrigins:     getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "EUR"),
		ReportTopItems:  getEnvInt("REPORT_TOP_ITEMS", 10),
		AdminEmail:      getEnv("ADMIN_EMAIL", "admin@cafebrew.com"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
	}

	log := logging.L()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set, refusing to start")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("JWT_SECRET must be at least 32 characters")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=cafe port=5432 sslmode=disable" {
		log.Warn("DATABASE_DSN is using the default value, set your own Postgres connection for production")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Warn("CORS_ALLOWED_ORIGINS is using the default value, set your own domain for production")
	}
	if cfg.ReportTopItems <= 0 {
		cfg.ReportTopItems = 10
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
