package cart

import (
	"go-inventory-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.AuthMiddleware())
	{
		carts.GET("/detail", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.POST("/finalize", handler.Finalize)

		items := carts.Group("/items/:itemId")
		{
			items.POST("", handler.AddItem)
			items.DELETE("", handler.RemoveItem)
		}
	}
}
