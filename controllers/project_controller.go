package controllers

import (
	"net/http"

	"collabspace/models"
	"collabspace/services"
	"collabspace/utils"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	projectService *services.ProjectService
	events         *utils.Manager
	publicBaseURL  string
}

func NewProjectController(projectService *services.ProjectService, events *utils.Manager, publicBaseURL string) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		events:         events,
		publicBaseURL:  publicBaseURL,
	}
}

func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req models.ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := c.projectService.CreateProject(ctx.Request.Context(), req, userID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

// GetProjects lists the projects created by the caller.
func (c *ProjectController) GetProjects(ctx *gin.Context) {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projects, err := c.projectService.GetProjectsByCreator(ctx.Request.Context(), userID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (c *ProjectController) GetProject(ctx *gin.Context) {
	projectID, ok := utils.ParseUUIDParam(ctx, "projectId", "project")
	if !ok {
		return
	}

	project, err := c.projectService.GetProjectByID(ctx.Request.Context(), projectID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	projectID, ok := utils.ParseUUIDParam(ctx, "projectId", "project")
	if !ok {
		return
	}

	var req models.ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := c.projectService.UpdateProject(ctx.Request.Context(), projectID, req, userID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	projectID, ok := utils.ParseUUIDParam(ctx, "projectId", "project")
	if !ok {
		return
	}

	resp, err := c.projectService.DeleteProject(ctx.Request.Context(), projectID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetProjectQRCode renders the project's share URL as a PNG.
func (c *ProjectController) GetProjectQRCode(ctx *gin.Context) {
	projectID, ok := utils.ParseUUIDParam(ctx, "projectId", "project")
	if !ok {
		return
	}

	project, err := c.projectService.GetProjectByID(ctx.Request.Context(), projectID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	png, err := utils.ProjectQRCode(c.publicBaseURL, project.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate QR code"})
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

// ProjectEvents upgrades the request and streams the project's task events.
func (c *ProjectController) ProjectEvents(ctx *gin.Context) {
	projectID, ok := utils.ParseUUIDParam(ctx, "projectId", "project")
	if !ok {
		return
	}

	if _, err := c.projectService.GetProjectByID(ctx.Request.Context(), projectID); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	c.events.ServeProject(ctx, projectID)
}
