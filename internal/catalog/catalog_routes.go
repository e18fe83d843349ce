package catalog

import (
	"go-inventory-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	items := r.Group("/inventory")
	items.Use(middleware.AuthMiddleware())
	{
		items.GET("", handler.List)
		items.GET("/:itemId", handler.Get)
	}
}
