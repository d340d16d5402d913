// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/egpt/storebuilder/internal/config"
	"github.com/egpt/storebuilder/internal/enhance"
	"github.com/egpt/storebuilder/internal/handlers"
	"github.com/egpt/storebuilder/internal/middleware"
	"github.com/egpt/storebuilder/internal/session"
)

func Initialize(cfg *config.Config) *gin.Engine {
	// Initialize services
	store := session.NewStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	enhancer := enhance.NewEnhancer(time.Duration(cfg.Enhance.DelayMillis)*time.Millisecond, nil)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(store)
	catalogHandler := handlers.NewCatalogHandler(store, cfg.Upload.MaxSizeMB)
	storefrontHandler := handlers.NewStorefrontHandler(store, enhancer)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	heavy := middleware.HeavyRateLimit(cfg.RateLimit.UploadRPS, cfg.RateLimit.UploadBurst)

	// API v1 routes
	v1 := r.Group("/v1")
	{
		v1.GET("/themes", storefrontHandler.ListThemes)

		catalogRoutes := v1.Group("/catalog")
		{
			catalogRoutes.GET("/template", catalogHandler.DownloadTemplate)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.POST("/:id/navigate", sessionHandler.Navigate)
			sessions.POST("/:id/catalog", heavy, catalogHandler.UploadCatalog)
			sessions.POST("/:id/generate", heavy, storefrontHandler.Generate)
			sessions.PUT("/:id/theme", storefrontHandler.SelectTheme)
			sessions.GET("/:id/storefront", storefrontHandler.GetStorefront)
		}
	}

	return r
}
