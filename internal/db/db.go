package db

import (
	"github.com/scheduleboard/backend/internal/app/board"
	"github.com/scheduleboard/backend/internal/app/schedule"
	"github.com/scheduleboard/backend/internal/app/user"
	"github.com/scheduleboard/backend/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.PostgresDSN()
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	logger.Info("Connected to PostgreSQL",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
	)

	return db, nil
}

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(
		&user.User{},
		&schedule.Schedule{},
		&board.Post{},
	); err != nil {
		return err
	}

	logger.Info("Database migrations completed")
	return nil
}
