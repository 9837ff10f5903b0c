package routes

import (
	"healthmate/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(router *gin.Engine, chatController *controllers.ChatController, reportController *controllers.ReportController, requireAuth gin.HandlerFunc) {
	chatRoutes := router.Group("/api/chat")
	chatRoutes.Use(requireAuth)
	{
		chatRoutes.POST("", chatController.CreateChat)
		chatRoutes.GET("", chatController.ListChats)
		chatRoutes.POST("/analyze-report/:reportId", reportController.AnalyzeReport)
		chatRoutes.GET("/:chatId", chatController.GetChat)
		chatRoutes.PUT("/:chatId", chatController.UpdateChatTitle)
		chatRoutes.DELETE("/:chatId", chatController.DeleteChat)
		chatRoutes.POST("/:chatId/message", chatController.SendMessage)
	}
}
