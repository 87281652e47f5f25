package utils

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger: development config locally,
// production config everywhere else.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("ENV") == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
