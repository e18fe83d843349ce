package app

import (
	"os"

	"go-inventory-api/internal/auth"
	"go-inventory-api/internal/cart"
	"go-inventory-api/internal/catalog"
	"go-inventory-api/internal/catalog/adapters"
	"go-inventory-api/internal/session"

	"github.com/gin-gonic/gin"
)

func registerModules(router *gin.Engine, flagStore session.Store) {
	// --- Services ---
	catalogService := catalog.NewService(catalog.DefaultSeed())
	cartService := cart.NewService(adapters.NewCartItemSource(catalogService))

	provider := auth.NewRESTProvider(os.Getenv("AUTH_API_URL"), os.Getenv("AUTH_API_KEY"))
	authGateway := auth.NewGateway(provider)

	// --- Handlers ---
	authHandler := auth.NewHandler(authGateway, flagStore)
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
	}
}
