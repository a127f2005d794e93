package performance

import (
	"github.com/gin-gonic/gin"
)

func PerformanceRoutes(router *gin.RouterGroup, pc *PerformanceController, authMW gin.HandlerFunc) {
	perfs := router.Group("/performances")
	perfs.Use(authMW)
	{
		perfs.GET("", pc.ListPerformances)
		perfs.POST("", pc.CreatePerformance)
		perfs.GET("/:performance_id", pc.GetPerformance)
		perfs.PUT("/:performance_id", pc.UpdatePerformance)
		perfs.DELETE("/:performance_id", pc.DeletePerformance)
	}

	teamPerfs := router.Group("/team-performances")
	teamPerfs.Use(authMW)
	{
		teamPerfs.GET("", pc.ListTeamPerformances)
		teamPerfs.POST("", pc.CreateTeamPerformance)
		teamPerfs.GET("/:id", pc.GetTeamPerformance)
		teamPerfs.PUT("/:id", pc.UpdateTeamPerformance)
		teamPerfs.DELETE("/:id", pc.DeleteTeamPerformance)
	}
}
