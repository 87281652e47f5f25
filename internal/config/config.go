package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const minJWTSecretLen = 16

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	ServerPort string
	Env        string

	JWTSecret    string
	JWTExpiresIn time.Duration

	CORSOrigins []string

	AuthRateLimitWindow  time.Duration
	AuthRateLimitMax     int
	AdminRateLimitWindow time.Duration
	AdminRateLimitMax    int

	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func LoadConfig() (Config, error) {
	cfg := Config{
		DBHost:     getEnv("DB_HOST", "postgres"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPass:     getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "db_scheduleboard"),
		ServerPort: getEnv("SERVER_PORT", "4000"),
		Env:        getEnv("ENV", "dev"),

		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTExpiresIn: getEnvAsDuration("JWT_EXPIRES_IN", 24*time.Hour),

		CORSOrigins: splitOrigins(getEnv("CORS_ORIGIN", "http://localhost:5173")),

		AuthRateLimitWindow:  getEnvAsDuration("AUTH_RATE_LIMIT_WINDOW", time.Minute),
		AuthRateLimitMax:     getEnvAsInt("AUTH_RATE_LIMIT_MAX", 20),
		AdminRateLimitWindow: getEnvAsDuration("ADMIN_RATE_LIMIT_WINDOW", time.Minute),
		AdminRateLimitMax:    getEnvAsInt("ADMIN_RATE_LIMIT_MAX", 60),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminName:     getEnv("ADMIN_NAME", "관리자"),
	}

	if len(cfg.JWTSecret) < minJWTSecretLen {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLen)
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD is required")
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := time.ParseDuration(value); err == nil {
			return v
		}
	}
	return fallback
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}
