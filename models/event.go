package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskEventType string

const (
	EventTaskCreated       TaskEventType = "task.created"
	EventTaskUpdated       TaskEventType = "task.updated"
	EventTaskStatusChanged TaskEventType = "task.status_changed"
	EventTaskDeleted       TaskEventType = "task.deleted"
	EventSubtaskAdded      TaskEventType = "subtask.added"
	EventLinkAdded         TaskEventType = "link.added"
	EventLinkRemoved       TaskEventType = "link.removed"
)

// TaskEvent is pushed to clients watching a project board after a write
// commits.
type TaskEvent struct {
	Type       TaskEventType    `json:"type"`
	ProjectID  uuid.UUID        `json:"project_id"`
	TaskID     uuid.UUID        `json:"task_id"`
	Task       *TaskResponse    `json:"task,omitempty"`
	Subtask    *SubtaskResponse `json:"subtask,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
