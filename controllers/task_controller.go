package controllers

import (
	"net/http"

	"collabspace/models"
	"collabspace/services"
	"collabspace/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskController struct {
	taskService *services.TaskService
}

func NewTaskController(taskService *services.TaskService) *TaskController {
	return &TaskController{taskService: taskService}
}

func (c *TaskController) CreateTask(ctx *gin.Context) {
	var req models.TaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Priority != "" {
		priority, ok := models.ParseTaskPriority(string(req.Priority))
		if !ok {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid priority " + string(req.Priority)})
			return
		}
		req.Priority = priority
	}

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := c.taskService.CreateTask(ctx.Request.Context(), req, userID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

func (c *TaskController) GetTask(ctx *gin.Context) {
	taskID, ok := utils.ParseUUIDParam(ctx, "taskId", "task")
	if !ok {
		return
	}

	task, err := c.taskService.GetTaskByID(ctx.Request.Context(), taskID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// GetProjectTasks lists a project's tasks, narrowed by ?assignee_id= when
// present.
func (c *TaskController) GetProjectTasks(ctx *gin.Context) {
	projectID, ok := utils.ParseUUIDParam(ctx, "projectId", "project")
	if !ok {
		return
	}

	var assigneeID *uuid.UUID
	if raw := ctx.Query("assignee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignee ID"})
			return
		}
		assigneeID = &id
	}

	tasks, err := c.taskService.GetTasksByProject(ctx.Request.Context(), projectID, assigneeID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

func (c *TaskController) GetAssigneeTasks(ctx *gin.Context) {
	assigneeID, ok := utils.ParseUUIDParam(ctx, "assigneeId", "assignee")
	if !ok {
		return
	}

	tasks, err := c.taskService.GetTasksByAssignee(ctx.Request.Context(), assigneeID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

func (c *TaskController) UpdateTask(ctx *gin.Context) {
	taskID, ok := utils.ParseUUIDParam(ctx, "taskId", "task")
	if !ok {
		return
	}

	var req models.TaskUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Priority != nil {
		priority, ok := models.ParseTaskPriority(string(*req.Priority))
		if !ok {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid priority " + string(*req.Priority)})
			return
		}
		req.Priority = &priority
	}

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := c.taskService.UpdateTask(ctx.Request.Context(), taskID, req, userID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (c *TaskController) UpdateTaskStatus(ctx *gin.Context) {
	taskID, ok := utils.ParseUUIDParam(ctx, "taskId", "task")
	if !ok {
		return
	}

	status, valid := models.ParseTaskStatus(ctx.Query("status"))
	if !valid {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid status " + ctx.Query("status")})
		return
	}

	task, err := c.taskService.UpdateTaskStatus(ctx.Request.Context(), taskID, status)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (c *TaskController) DeleteTask(ctx *gin.Context) {
	taskID, ok := utils.ParseUUIDParam(ctx, "taskId", "task")
	if !ok {
		return
	}

	if err := c.taskService.DeleteTask(ctx.Request.Context(), taskID); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *TaskController) AddSubtask(ctx *gin.Context) {
	taskID, ok := utils.ParseUUIDParam(ctx, "taskId", "task")
	if !ok {
		return
	}

	var req models.SubtaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subtask, err := c.taskService.AddSubtask(ctx.Request.Context(), taskID, req)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, subtask)
}

func (c *TaskController) GetSubtasks(ctx *gin.Context) {
	taskID, ok := utils.ParseUUIDParam(ctx, "taskId", "task")
	if !ok {
		return
	}

	subtasks, err := c.taskService.GetSubtasksByTask(ctx.Request.Context(), taskID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subtasks)
}

func (c *TaskController) AddLinkedWorkItem(ctx *gin.Context) {
	taskID, linkedTaskID, ok := parseLinkParams(ctx)
	if !ok {
		return
	}

	task, err := c.taskService.AddLinkedWorkItem(ctx.Request.Context(), taskID, linkedTaskID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func (c *TaskController) RemoveLinkedWorkItem(ctx *gin.Context) {
	taskID, linkedTaskID, ok := parseLinkParams(ctx)
	if !ok {
		return
	}

	task, err := c.taskService.RemoveLinkedWorkItem(ctx.Request.Context(), taskID, linkedTaskID)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// parseLinkParams reads both ends of a link and rejects a task linking to
// itself.
func parseLinkParams(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	taskID, ok := utils.ParseUUIDParam(ctx, "taskId", "task")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	linkedTaskID, ok := utils.ParseUUIDParam(ctx, "linkedTaskId", "linked task")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	if taskID == linkedTaskID {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a task cannot be linked to itself"})
		return uuid.Nil, uuid.Nil, false
	}
	return taskID, linkedTaskID, true
}
