package main

import (
	"log"
	"net/http"

	"github.com/cheflinkhq/chef-marketplace/internal/config"
	dbpkg "github.com/cheflinkhq/chef-marketplace/internal/db"
	"github.com/cheflinkhq/chef-marketplace/internal/middleware"
	"github.com/cheflinkhq/chef-marketplace/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// static frontend + uploaded documents
	r.Static("/public", "./public")
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
