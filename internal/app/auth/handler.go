package auth

import (
	"net/http"

	"github.com/scheduleboard/backend/internal/apperr"
	"github.com/scheduleboard/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Me(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.SugaredLogger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{service: service, logger: logger.Sugar()}
}

// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Success 201 {object} AccountResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/auth/register [post]
func (h *handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "입력값이 올바르지 않습니다."})
		return
	}

	account, err := h.service.Register(req)
	if err != nil {
		h.respondError(c, "Register", err)
		return
	}

	h.logger.Infow("Register: account created", "user_id", account.ID, "email", account.Email)
	c.JSON(http.StatusCreated, account)
}

// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (h *handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "입력값이 올바르지 않습니다."})
		return
	}

	resp, err := h.service.Login(req)
	if err != nil {
		h.respondError(c, "Login", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get the authenticated account
// @Tags Auth
// @Produce json
// @Success 200 {object} user.Public
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/auth/me [get]
func (h *handler) Me(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "인증 토큰이 필요합니다."})
		return
	}

	account, err := h.service.Me(actor.UserID)
	if err != nil {
		h.respondError(c, "Me", err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		h.logger.Errorw(op+": unexpected failure", "error", err)
	}
	c.JSON(status, gin.H{"message": apperr.Message(err)})
}
