package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cellwatch/towerjumps-backend-go/internal/config"
	"github.com/cellwatch/towerjumps-backend-go/internal/handler"
	"github.com/cellwatch/towerjumps-backend-go/internal/middleware"
)

// SetupRouter wires the HTTP surface.
func SetupRouter(cfg *config.Config, uploads *handler.UploadHandler, analysis *handler.AnalysisHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS for the dashboard client
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Tower Jumps API is running",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "healthy",
				"message": "Tower Jumps API is running",
			})
		})

		// Mutating endpoints sit behind optional bearer auth.
		authed := api.Group("", middleware.Auth(cfg.JWTSecret))
		{
			authed.POST("/upload", uploads.Upload)
			authed.POST("/analyze", analysis.Analyze)
		}

		api.GET("/status/:job_id", analysis.Status)
		api.GET("/results", analysis.Results)
		api.GET("/export", analysis.Export)
	}

	return r
}
