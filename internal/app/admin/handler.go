package admin

import (
	"net/http"

	"github.com/scheduleboard/backend/internal/apperr"
	"github.com/scheduleboard/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	Overview(c *gin.Context)
	ListUsers(c *gin.Context)
	UpdateUser(c *gin.Context)
	DeleteUser(c *gin.Context)
	ListSchedules(c *gin.Context)
	DeleteSchedule(c *gin.Context)
	ListPosts(c *gin.Context)
	DeletePost(c *gin.Context)
}

type handler struct {
	service Service
	logger  *zap.SugaredLogger
}

func NewHandler(service Service, logger *zap.Logger) Handler {
	return &handler{service: service, logger: logger.Sugar()}
}

// @Summary Dashboard counters and latest records
// @Tags Admin
// @Produce json
// @Success 200 {object} OverviewResponse
// @Router /api/admin/overview [get]
func (h *handler) Overview(c *gin.Context) {
	overview, err := h.service.Overview()
	if err != nil {
		h.respondError(c, "Overview", err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// @Summary List all users with schedule counts
// @Tags Admin
// @Produce json
// @Success 200 {array} UserRow
// @Router /api/admin/users [get]
func (h *handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		h.respondError(c, "ListUsers", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Update a user's name or role
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} user.Public
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/users/{id} [patch]
func (h *handler) UpdateUser(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "입력값이 올바르지 않습니다."})
		return
	}

	updated, err := h.service.UpdateUser(actor, c.Param("id"), req)
	if err != nil {
		h.respondError(c, "UpdateUser", err)
		return
	}

	h.logger.Infow("UpdateUser: user updated", "target_id", updated.ID, "actor_id", actor.UserID)
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete a user
// @Tags Admin
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/users/{id} [delete]
func (h *handler) DeleteUser(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	if err := h.service.DeleteUser(actor, c.Param("id")); err != nil {
		h.respondError(c, "DeleteUser", err)
		return
	}

	h.logger.Infow("DeleteUser: user deleted", "target_id", c.Param("id"), "actor_id", actor.UserID)
	c.Status(http.StatusNoContent)
}

// @Summary List all schedules
// @Tags Admin
// @Produce json
// @Success 200 {array} ScheduleRow
// @Router /api/admin/schedules [get]
func (h *handler) ListSchedules(c *gin.Context) {
	schedules, err := h.service.ListSchedules()
	if err != nil {
		h.respondError(c, "ListSchedules", err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// @Summary Delete any schedule
// @Tags Admin
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/admin/schedules/{id} [delete]
func (h *handler) DeleteSchedule(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	if err := h.service.DeleteSchedule(actor, c.Param("id")); err != nil {
		h.respondError(c, "DeleteSchedule", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List all board posts
// @Tags Admin
// @Produce json
// @Success 200 {array} PostRow
// @Router /api/admin/posts [get]
func (h *handler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts()
	if err != nil {
		h.respondError(c, "ListPosts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary Delete any board post
// @Tags Admin
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/admin/posts/{id} [delete]
func (h *handler) DeletePost(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	if err := h.service.DeletePost(actor, c.Param("id")); err != nil {
		h.respondError(c, "DeletePost", err)
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
