package auth

import (
	"go-inventory-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		// Brute-force guard: 1 attempt per 10 seconds, small burst.
		auth.POST("/login",
			middleware.RateLimitByIP(0.1, 3),
			handler.Login,
		)

		auth.GET("/session", handler.Session)

		authenticated := auth.Group("/")
		authenticated.Use(middleware.AuthMiddleware())
		{
			authenticated.POST("/logout", handler.Logout)
		}
	}
}
