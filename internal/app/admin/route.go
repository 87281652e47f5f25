package admin

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	adminGroup := rg.Group("/admin")
	{
		adminGroup.GET("/overview", handler.Overview)
		adminGroup.GET("/users", handler.ListUsers)
		adminGroup.PATCH("/users/:id", handler.UpdateUser)
		adminGroup.DELETE("/users/:id", handler.DeleteUser)
		adminGroup.GET("/schedules", handler.ListSchedules)
		adminGroup.DELETE("/schedules/:id", handler.DeleteSchedule)
		adminGroup.GET("/posts", handler.ListPosts)
		adminGroup.DELETE("/posts/:id", handler.DeletePost)
	}
}
