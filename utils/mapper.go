package utils

import "collabspace/models"

func ToProjectResponse(project *models.Project) models.ProjectResponse {
	return models.ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		StartDate:   models.DateOf(project.StartDate),
		EndDate:     models.DateOf(project.EndDate),
		Status:      project.Status,
		TeamID:      project.TeamID,
		CreatedBy:   project.CreatedBy,
	}
}

func ToProjectResponses(projects []models.Project) []models.ProjectResponse {
	resp := make([]models.ProjectResponse, 0, len(projects))
	for i := range projects {
		resp = append(resp, ToProjectResponse(&projects[i]))
	}
	return resp
}

// ToTaskResponse flattens a task with its freshly queried subtasks and the
// targets of its outgoing links. task.Project supplies the project name when
// it is loaded.
func ToTaskResponse(task *models.Task, subtasks []models.Subtask, linked []models.Task) models.TaskResponse {
	resp := models.TaskResponse{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		ProjectID:       task.ProjectID,
		AssigneeID:      task.AssigneeID,
		Status:          task.Status,
		Priority:        task.Priority,
		DueDate:         task.DueDate,
		CreatedAt:       task.CreatedAt,
		Subtasks:        ToSubtaskResponses(subtasks),
		LinkedWorkItems: make([]models.TaskLinkResponse, 0, len(linked)),
	}
	if task.Project != nil {
		resp.ProjectName = task.Project.Name
	}
	for i := range linked {
		resp.LinkedWorkItems = append(resp.LinkedWorkItems, ToTaskLinkResponse(&linked[i]))
	}
	return resp
}

func ToSubtaskResponse(subtask *models.Subtask) models.SubtaskResponse {
	return models.SubtaskResponse{
		ID:           subtask.ID,
		Title:        subtask.Title,
		Description:  subtask.Description,
		ParentTaskID: subtask.ParentTaskID,
		AssigneeID:   subtask.AssigneeID,
		Status:       subtask.Status,
		CreatedAt:    subtask.CreatedAt,
	}
}

func ToSubtaskResponses(subtasks []models.Subtask) []models.SubtaskResponse {
	resp := make([]models.SubtaskResponse, 0, len(subtasks))
	for i := range subtasks {
		resp = append(resp, ToSubtaskResponse(&subtasks[i]))
	}
	return resp
}

func ToTaskLinkResponse(linked *models.Task) models.TaskLinkResponse {
	return models.TaskLinkResponse{
		ID:     linked.ID,
		Title:  linked.Title,
		Status: string(linked.Status),
	}
}
