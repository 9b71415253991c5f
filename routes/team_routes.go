package routes

import (
	"collabspace/controllers"

	"github.com/gin-gonic/gin"
)

func SetupTeamRoutes(router *gin.Engine, teamController *controllers.TeamController) {
	teamGroup := router.Group("/api/teams")
	{
		teamGroup.GET("/:teamId", teamController.GetTeam)
	}
}
