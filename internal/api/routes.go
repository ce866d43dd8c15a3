package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jroosing/zonejson/internal/api/handlers"
	"github.com/jroosing/zonejson/internal/api/middleware"
	"github.com/jroosing/zonejson/internal/config"

	_ "github.com/jroosing/zonejson/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus exposition from the handler's own registry.
	r.GET("/metrics", gin.WrapH(h.Metrics().Handler()))

	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	api.POST("/parse", h.Parse)

	api.GET("/zones", h.ListZones)
	api.POST("/zones", h.CreateZone)
	api.GET("/zones/:name", h.GetZone)
	api.DELETE("/zones/:name", h.DeleteZone)
}
