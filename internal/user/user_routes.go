package user

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/hooptrack/pkg/rmiddleware"
)

func RegisterUserRoutes(router *gin.RouterGroup, uc *UserController, authMW gin.HandlerFunc) {
	users := router.Group("/users")
	users.Use(authMW)
	{
		users.GET("", rmiddleware.StaffMiddleware(), uc.ListUsers)
		users.POST("", rmiddleware.AdminMiddleware(), uc.CreateUser)
		users.GET("/me", uc.GetMe)
		users.GET("/:user_id", uc.GetUser)
		users.GET("/:user_id/is-coach", uc.IsCoach)
		users.GET("/:user_id/is-player", uc.IsPlayer)
		users.GET("/:user_id/is-statistician", uc.IsStatistician)
		users.PUT("/:user_id", uc.UpdateUser)
		users.DELETE("/:user_id", uc.DeleteUser)
	}
}
