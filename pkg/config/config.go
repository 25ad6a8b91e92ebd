package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	JWTExpiry      time.Duration
	FrontendURL    string
	CookieDomain   string
	GoogleClientID string
	RedisAddr      string
	RedisPassword  string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	expiry := 24 * time.Hour
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			expiry = parsed
		}
	}

	return &Config{
		Port:           getEnv("PORT", "3000"),
		DatabaseURL:    getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=taskboard port=5432 sslmode=disable"),
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiry:      expiry,
		FrontendURL:    getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),
		CookieDomain:   getEnv("COOKIE_DOMAIN", "localhost"),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
