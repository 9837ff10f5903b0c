package routes

import (
	"healthmate/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, accountController *controllers.AccountController, requireAuth gin.HandlerFunc) {
	authRoutesPublic := router.Group("/api/auth")
	{
		authRoutesPublic.POST("/register", accountController.Register)
		authRoutesPublic.POST("/login", accountController.Login)
	}
	authRoutesPrivate := router.Group("/api/auth")
	authRoutesPrivate.Use(requireAuth)
	{
		authRoutesPrivate.GET("/profile", accountController.GetProfile)
		authRoutesPrivate.PUT("/profile", accountController.UpdateProfile)
	}
}
