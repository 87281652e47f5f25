package utils

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv loads the env file named by ENV_FILE, falling back to .env.
// A missing file is not an error: deployments set real variables instead.
func LoadEnv(logger *zap.Logger) {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		logger.Warn("Env file not loaded, relying on process environment",
			zap.String("path", path))
		return
	}
	logger.Info("Env file loaded", zap.String("path", path))
}
