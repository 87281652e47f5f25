package board

import (
	"net/http"

	"github.com/scheduleboard/backend/internal/apperr"
	"github.com/scheduleboard/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.SugaredLogger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{service: service, logger: logger.Sugar()}
}

// @Summary List posts of a board type
// @Tags Board
// @Produce json
// @Param type query string false "NOTICE or FREE" default(FREE)
// @Success 200 {array} PostResponse
// @Failure 400 {object} map[string]string
// @Router /api/board/posts [get]
func (h *handler) List(c *gin.Context) {
	posts, err := h.service.List(c.Query("type"))
	if err != nil {
		h.respondError(c, "List", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary Get a single post
// @Tags Board
// @Produce json
// @Success 200 {object} PostResponse
// @Failure 404 {object} map[string]string
// @Router /api/board/posts/{id} [get]
func (h *handler) Get(c *gin.Context) {
	post, err := h.service.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, "Get", err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary Create a post
// @Tags Board
// @Accept json
// @Produce json
// @Success 201 {object} PostResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/board/posts [post]
func (h *handler) Create(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "입력값이 올바르지 않습니다."})
		return
	}

	created, err := h.service.Create(actor, req)
	if err != nil {
		h.respondError(c, "Create", err)
		return
	}

	h.logger.Infow("Create: post created", "post_id", created.ID, "type", created.Type, "user_id", actor.UserID)
	c.JSON(http.StatusCreated, created)
}

// @Summary Update a post
// @Tags Board
// @Accept json
// @Produce json
// @Success 200 {object} PostResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/board/posts/{id} [patch]
func (h *handler) Update(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "입력값이 올바르지 않습니다."})
		return
	}

	updated, err := h.service.Update(actor, c.Param("id"), req)
	if err != nil {
		h.respondError(c, "Update", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete a post
// @Tags Board
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/board/posts/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	if err := h.service.Delete(actor, c.Param("id")); err != nil {
		h.respondError(c, "Delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		h.logger.Errorw(op+": unexpected failure", "error", err)
	}
	c.JSON(status, gin.H{"message": apperr.Message(err)})
}
