package board

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	posts := rg.Group("/board/posts")
	{
		posts.GET("", handler.List)
		posts.GET("/:id", handler.Get)
		posts.POST("", handler.Create)
		posts.PATCH("/:id", handler.Update)
		posts.DELETE("/:id", handler.Delete)
	}
}
