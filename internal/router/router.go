package router

import (
	"net/http"

	"github.com/scheduleboard/backend/internal/app/admin"
	"github.com/scheduleboard/backend/internal/app/auth"
	"github.com/scheduleboard/backend/internal/app/board"
	"github.com/scheduleboard/backend/internal/app/health"
	"github.com/scheduleboard/backend/internal/app/schedule"
	"github.com/scheduleboard/backend/internal/authz"
	"github.com/scheduleboard/backend/internal/middleware"
	"github.com/scheduleboard/backend/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	Engine      *gin.Engine
	requireAuth gin.HandlerFunc
}

func NewRouter(logger *zap.Logger, tokens *token.Manager, corsOrigins []string) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware(corsOrigins))
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered", zap.Any("error", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "서버 내부 오류가 발생했습니다."})
	}))
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "요청한 리소스를 찾을 수 없습니다."})
	})

	return &Router{
		Engine:      engine,
		requireAuth: middleware.Auth(tokens),
	}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine, handler)
}

func (r *Router) RegisterAuthRoutes(handler auth.Handler, limiter *middleware.RateLimiter) {
	rg := r.Engine.Group("/api")
	rg.Use(limiter.Handler())
	auth.RegisterRoutes(rg, handler, r.requireAuth)
}

func (r *Router) RegisterScheduleRoutes(handler schedule.Handler) {
	rg := r.Engine.Group("/api")
	rg.Use(r.requireAuth)
	schedule.RegisterRoutes(rg, handler)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	rg := r.Engine.Group("/api")
	rg.Use(r.requireAuth)
	board.RegisterRoutes(rg, handler)
}

func (r *Router) RegisterAdminRoutes(handler admin.Handler, limiter *middleware.RateLimiter) {
	rg := r.Engine.Group("/api")
	rg.Use(limiter.Handler(), r.requireAuth, middleware.RequireRole(authz.RoleAdmin))
	admin.RegisterRoutes(rg, handler)
}
