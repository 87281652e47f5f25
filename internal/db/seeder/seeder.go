// Package seeder reconciles the bootstrap administrator account before the
// server accepts traffic.
package seeder

import (
	"errors"

	"github.com/scheduleboard/backend/internal/app/user"
	"github.com/scheduleboard/backend/internal/authz"
	"github.com/scheduleboard/backend/internal/config"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

type Seeder struct {
	users  user.Repository
	cfg    *config.Config
	logger *zap.Logger
}

func NewSeeder(users user.Repository, cfg *config.Config, logger *zap.Logger) *Seeder {
	return &Seeder{
		users:  users,
		cfg:    cfg,
		logger: logger,
	}
}

// EnsureAdmin upserts the configured admin account. Repeated runs leave a
// single record with an unchanged id; role, name, and password hash are
// forced back to the configured values every time.
func (s *Seeder) EnsureAdmin() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcryptCost)
	if err != nil {
		return err
	}

	existing, err := s.users.GetByEmail(s.cfg.AdminEmail)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		account := &user.User{
			Email:        s.cfg.AdminEmail,
			Name:         s.cfg.AdminName,
			PasswordHash: string(hash),
			Role:         authz.RoleAdmin,
		}
		if err := s.users.Create(account); err != nil {
			return err
		}
		s.logger.Info("Admin account created", zap.String("email", s.cfg.AdminEmail))
		return nil
	}

	updates := map[string]interface{}{
		"role":          authz.RoleAdmin,
		"name":          s.cfg.AdminName,
		"password_hash": string(hash),
	}
	if err := s.users.Update(existing.ID, updates); err != nil {
		return err
	}
	s.logger.Info("Admin account reconciled", zap.String("email", s.cfg.AdminEmail))
	return nil
}
