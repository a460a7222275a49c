package main

import (
	"log"
	"net/http"

	"github.com/BeautyProBR/beautypro-api/internal/cache"
	"github.com/BeautyProBR/beautypro-api/internal/config"
	dbpkg "github.com/BeautyProBR/beautypro-api/internal/db"
	"github.com/BeautyProBR/beautypro-api/internal/middleware"
	"github.com/BeautyProBR/beautypro-api/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := cache.NewRedisClient(cfg)
	if rdb == nil {
		log.Println("redis unavailable, public rate limiting disabled")
	}

	r := gin.Default()

	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
