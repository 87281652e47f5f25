package schedule

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	schedules := rg.Group("/schedules")
	{
		schedules.GET("", handler.List)
		schedules.POST("", handler.Create)
		schedules.PATCH("/:id", handler.Update)
		schedules.DELETE("/:id", handler.Delete)
	}
}
