package team

import (
	"github.com/gin-gonic/gin"
)

// TeamRoutes sets up all team-related routes. Authorization beyond
// authentication happens per handler.
func TeamRoutes(router *gin.RouterGroup, tc *TeamController, authMW gin.HandlerFunc) {
	teams := router.Group("/teams")
	teams.Use(authMW)
	{
		teams.GET("", tc.GetAllTeams)
		teams.POST("", tc.CreateTeam)
		teams.GET("/:team_id", tc.GetTeamByID)
		teams.PUT("/:team_id", tc.UpdateTeam)
		teams.DELETE("/:team_id", tc.DeleteTeam)

		teams.GET("/:team_id/players", tc.GetTeamPlayers)
		teams.GET("/:team_id/players/active", tc.GetActivePlayers)

		teams.POST("/:team_id/staff/:user_id", tc.AddStaff)
		teams.DELETE("/:team_id/staff/:user_id", tc.RemoveStaff)

		teams.GET("/:team_id/record", tc.GetRecord)
		teams.GET("/:team_id/averages", tc.GetAverages)
		teams.GET("/:team_id/summary", tc.GetSummary)
		teams.GET("/:team_id/games", tc.GetTeamGames)
	}
}
