package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskRequest struct {
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	ProjectID   *uuid.UUID   `json:"project_id" binding:"required"`
	AssigneeID  *uuid.UUID   `json:"assignee_id"`
	DueDate     *time.Time   `json:"due_date"`
	Priority    TaskPriority `json:"priority"`
	// Status is accepted for compatibility and ignored: new tasks start at TO_DO.
	Status        TaskStatus  `json:"status"`
	LinkedTaskIDs []uuid.UUID `json:"linked_task_ids"`
}

// TaskUpdateRequest is a partial update: nil fields are left alone.
type TaskUpdateRequest struct {
	Title       *string       `json:"title" binding:"omitempty,min=1"`
	Description *string       `json:"description"`
	AssigneeID  *uuid.UUID    `json:"assignee_id"`
	DueDate     *time.Time    `json:"due_date"`
	Priority    *TaskPriority `json:"priority"`
}

type SubtaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
}

type TaskResponse struct {
	ID              uuid.UUID          `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	ProjectID       uuid.UUID          `json:"project_id"`
	ProjectName     string             `json:"project_name"`
	AssigneeID      *uuid.UUID         `json:"assignee_id"`
	Status          TaskStatus         `json:"status"`
	Priority        TaskPriority       `json:"priority"`
	DueDate         *time.Time         `json:"due_date"`
	CreatedAt       time.Time          `json:"created_at"`
	Subtasks        []SubtaskResponse  `json:"subtasks"`
	LinkedWorkItems []TaskLinkResponse `json:"linked_work_items"`
}

type SubtaskResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ParentTaskID uuid.UUID  `json:"parent_task_id"`
	AssigneeID   *uuid.UUID `json:"assignee_id"`
	Status       TaskStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// TaskLinkResponse summarises the target of an outgoing link.
type TaskLinkResponse struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Status string    `json:"status"`
}
