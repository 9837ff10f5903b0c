package routes

import (
	"healthmate/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterReportRoutes(router *gin.Engine, reportController *controllers.ReportController, requireAuth gin.HandlerFunc) {
	reportRoutes := router.Group("/api/reports")
	reportRoutes.Use(requireAuth)
	{
		reportRoutes.POST("/upload", reportController.UploadReport)
		reportRoutes.GET("", reportController.ListReports)
		reportRoutes.GET("/:reportId", reportController.GetReport)
		reportRoutes.PUT("/:reportId", reportController.UpdateReport)
		reportRoutes.DELETE("/:reportId", reportController.DeleteReport)
	}
}
