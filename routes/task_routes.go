package routes

import (
	"collabspace/controllers"

	"github.com/gin-gonic/gin"
)

func SetupTaskRoutes(router *gin.Engine, taskController *controllers.TaskController, userMiddleware gin.HandlerFunc) {
	taskGroup := router.Group("/api/tasks")
	{
		taskGroup.POST("", userMiddleware, taskController.CreateTask)
		taskGroup.GET("/:taskId", taskController.GetTask)
		taskGroup.PUT("/:taskId", userMiddleware, taskController.UpdateTask)
		taskGroup.PATCH("/:taskId/status", taskController.UpdateTaskStatus)
		taskGroup.DELETE("/:taskId", taskController.DeleteTask)

		taskGroup.POST("/:taskId/subtasks", taskController.AddSubtask)
		taskGroup.GET("/:taskId/subtasks", taskController.GetSubtasks)

		taskGroup.POST("/:taskId/linked-work-items/:linkedTaskId", taskController.AddLinkedWorkItem)
		taskGroup.DELETE("/:taskId/linked-work-items/:linkedTaskId", taskController.RemoveLinkedWorkItem)
	}

	router.GET("/api/projects/:projectId/tasks", taskController.GetProjectTasks)
	router.GET("/api/users/:assigneeId/tasks", taskController.GetAssigneeTasks)
}
