package app

import (
	"github.com/scheduleboard/backend/internal/app/admin"
	"github.com/scheduleboard/backend/internal/app/auth"
	"github.com/scheduleboard/backend/internal/app/board"
	"github.com/scheduleboard/backend/internal/app/health"
	"github.com/scheduleboard/backend/internal/app/schedule"
	"github.com/scheduleboard/backend/internal/app/user"
	"github.com/scheduleboard/backend/internal/config"
	"github.com/scheduleboard/backend/internal/db"
	"github.com/scheduleboard/backend/internal/db/seeder"
	"github.com/scheduleboard/backend/internal/middleware"
	"github.com/scheduleboard/backend/internal/router"
	"github.com/scheduleboard/backend/internal/token"
	"github.com/scheduleboard/backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

// Bootstrap wires the whole application. The admin account is reconciled
// here, before the caller starts listening.
func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	userRepo := user.NewRepository(dbConn)

	seed := seeder.NewSeeder(userRepo, cfg, logger)
	if err := seed.EnsureAdmin(); err != nil {
		return nil, err
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiresIn)

	scheduleRepo := schedule.NewRepository(dbConn)
	boardRepo := board.NewRepository(dbConn)
	adminRepo := admin.NewRepository(dbConn)

	authService := auth.NewService(userRepo, tokens)
	scheduleService := schedule.NewService(scheduleRepo)
	boardService := board.NewService(boardRepo)
	adminService := admin.NewService(adminRepo)

	authHandler := auth.NewHandler(authService, logger)
	scheduleHandler := schedule.NewHandler(scheduleService, logger)
	boardHandler := board.NewHandler(boardService, logger)
	adminHandler := admin.NewHandler(adminService, logger)
	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:          dbConn,
		ServiceName: "backend",
	})

	authLimiter := middleware.NewRateLimiter(
		cfg.AuthRateLimitWindow, cfg.AuthRateLimitMax,
		"인증 요청이 너무 많습니다. 잠시 후 다시 시도해주세요.",
	)
	adminLimiter := middleware.NewRateLimiter(
		cfg.AdminRateLimitWindow, cfg.AdminRateLimitMax,
		"관리자 요청 한도를 초과했습니다. 잠시 후 다시 시도해주세요.",
	)

	r := router.NewRouter(logger, tokens, cfg.CORSOrigins)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterAuthRoutes(authHandler, authLimiter)
	r.RegisterScheduleRoutes(scheduleHandler)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterAdminRoutes(adminHandler, adminLimiter)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
