package app

import (
	"os"

	"go-inventory-api/internal/session"

	"github.com/gin-gonic/gin"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	var flagStore session.Store
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err := connectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		flagStore = session.NewRedisStore(redisClient)
	} else {
		// single-process run without redis; the flag lives for the
		// lifetime of the process only
		flagStore = session.NewMemoryStore()
	}

	// 2. Register Modules & Routes
	registerModules(router, flagStore)

	return nil
}
