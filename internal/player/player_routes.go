package player

import (
	"github.com/gin-gonic/gin"
)

func PlayerRoutes(router *gin.RouterGroup, pc *PlayerController, authMW gin.HandlerFunc) {
	players := router.Group("/players")
	players.Use(authMW)
	{
		players.GET("", pc.ListPlayers)
		players.POST("", pc.CreatePlayer)
		players.GET("/me", pc.GetMyProfile)
		players.GET("/:player_id", pc.GetPlayer)
		players.PUT("/:player_id", pc.UpdatePlayer)
		players.DELETE("/:player_id", pc.DeletePlayer)
		players.GET("/:player_id/performances", pc.GetPlayerPerformances)
		players.GET("/:player_id/averages", pc.GetPlayerAverages)
	}
}
