package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/edustat/markboard-backend/internal/config"
	"github.com/edustat/markboard-backend/internal/handler"
	"github.com/edustat/markboard-backend/internal/middleware"
	"github.com/edustat/markboard-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Filter *handler.FilterHandler
	Stats  *handler.StatsHandler
	Upload *handler.UploadHandler
	Query  *handler.QueryHandler
	FAMode *handler.FAModeHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response carries one.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploads are the expensive path: 10 per minute per IP.
	uploadLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := router.Group("/api")
	{
		api.GET("/init", handlers.Filter.Init)
		api.POST("/class-stats", handlers.Stats.ClassStats)
		api.POST("/upload-marks", uploadLimiter.Middleware(), handlers.Upload.UploadMarks)
		api.GET("/queries", handlers.Query.List)
		api.POST("/queries/respond", handlers.Query.Respond)
		api.POST("/fa-mode", handlers.FAMode.Set)
		api.GET("/fa-mode", handlers.FAMode.Get)
	}

	return router
}
