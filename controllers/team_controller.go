package controllers

import (
	"net/http"

	"collabspace/services"
	"collabspace/utils"

	"github.com/gin-gonic/gin"
)

// TeamController handles team-related API endpoints
type TeamController struct {
	TeamService *services.TeamService
}

// NewTeamController creates a new team controller
func NewTeamController(teamService *services.TeamService) *TeamController {
	return &TeamController{
		TeamService: teamService,
	}
}

// GetTeam gets a team by ID
func (tc *TeamController) GetTeam(c *gin.Context) {
	teamID, ok := utils.ParseUUIDParam(c, "teamId", "team")
	if !ok {
		return
	}

	team, err := tc.TeamService.GetTeamByID(c.Request.Context(), teamID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}
