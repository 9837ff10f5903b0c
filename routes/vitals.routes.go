package routes

import (
	"healthmate/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterVitalsRoutes(router *gin.Engine, vitalsController *controllers.VitalsController, requireAuth gin.HandlerFunc) {
	vitalsRoutes := router.Group("/api/vitals")
	vitalsRoutes.Use(requireAuth)
	{
		vitalsRoutes.POST("", vitalsController.CreateVitals)
		vitalsRoutes.GET("", vitalsController.ListVitals)
		vitalsRoutes.GET("/stats", vitalsController.GetVitalsStats)
		vitalsRoutes.GET("/:vitalId", vitalsController.GetVitals)
		vitalsRoutes.PUT("/:vitalId", vitalsController.UpdateVitals)
		vitalsRoutes.DELETE("/:vitalId", vitalsController.DeleteVitals)
	}
}
