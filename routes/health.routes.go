package routes

import (
	"net/http"

	"healthmate/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.Engine, healthController *controllers.HealthController) {
	router.GET("/api/health", healthController.Health)
}

// RegisterUploadRoutes serves locally stored report files.
func RegisterUploadRoutes(router *gin.Engine, urlPrefix, dir string) {
	router.StaticFS(urlPrefix, gin.Dir(dir, false))
}

func RegisterNotFound(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Route not found",
			"error":   c.Request.Method + " " + c.Request.URL.Path,
		})
	})
}
