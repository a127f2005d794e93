package game

import (
	"github.com/gin-gonic/gin"
)

func GameRoutes(router *gin.RouterGroup, gc *GameController, authMW gin.HandlerFunc) {
	games := router.Group("/games")
	games.Use(authMW)
	{
		games.GET("", gc.GetGames)
		games.POST("", gc.CreateGame)
		games.GET("/:game_id", gc.GetGame)
		games.PUT("/:game_id", gc.UpdateGame)
		games.PUT("/:game_id/status", gc.UpdateStatus)
		games.DELETE("/:game_id", gc.DeleteGame)
		games.GET("/:game_id/performances", gc.GetGamePerformances)
		games.GET("/:game_id/team-performances", gc.GetGameTeamPerformances)
	}
}
