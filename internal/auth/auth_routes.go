package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.RouterGroup, ac *AuthController, authMW gin.HandlerFunc) {
	authPublic := router.Group("/auth")
	{
		authPublic.POST("/login", ac.Login)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(authMW)
	{
		authProtected.POST("/change-password", ac.ChangePassword)
	}
}
