package routes

import (
	"collabspace/controllers"

	"github.com/gin-gonic/gin"
)

func SetupProjectRoutes(router *gin.Engine, projectController *controllers.ProjectController, userMiddleware gin.HandlerFunc) {
	projectGroup := router.Group("/api/projects")
	{
		projectGroup.POST("", userMiddleware, projectController.CreateProject)
		projectGroup.GET("", userMiddleware, projectController.GetProjects)
		projectGroup.GET("/:projectId", projectController.GetProject)
		projectGroup.PUT("/:projectId", userMiddleware, projectController.UpdateProject)
		projectGroup.DELETE("/:projectId", projectController.DeleteProject)
		projectGroup.GET("/:projectId/qr", projectController.GetProjectQRCode)
		projectGroup.GET("/:projectId/ws", projectController.ProjectEvents)
	}
}
