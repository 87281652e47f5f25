package schedule

import (
	"net/http"

	"github.com/scheduleboard/backend/internal/apperr"
	"github.com/scheduleboard/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	List(c *gin.Context)
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

// @Summary List the caller's schedules
// @Tags Schedule
// @Produce json
// @Success 200 {array} Schedule
// @Router /api/schedules [get]
func (h *handler) List(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	schedules, err := h.service.List(actor.UserID)
	if err != nil {
		h.respondError(c, "List", err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// @Summary Create a schedule
// @Tags Schedule
// @Accept json
// @Produce json
// @Success 201 {object} Schedule
// @Failure 400 {object} map[string]string
// @Router /api/schedules [post]
func (h *handler) Create(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "입력값이 올바르지 않습니다."})
		return
	}

	created, err := h.service.Create(actor.UserID, req)
	if err != nil {
		h.respondError(c, "Create", err)
		return
	}

	h.logger.Infow("Create: schedule created", "schedule_id", created.ID, "user_id", actor.UserID)
	c.JSON(http.StatusCreated, created)
}

// @Summary Update a schedule owned by the caller
// @Tags Schedule
// @Accept json
// @Produce json
// @Success 200 {object} Schedule
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/schedules/{id} [patch]
func (h *handler) Update(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "입력값이 올바르지 않습니다."})
		return
	}

	updated, err := h.service.Update(actor.UserID, c.Param("id"), req)
	if err != nil {
		h.respondError(c, "Update", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete a schedule owned by the caller
// @Tags Schedule
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/schedules/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	if err := h.service.Delete(actor.UserID, c.Param("id")); err != nil {
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
