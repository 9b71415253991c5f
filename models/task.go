package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"project_id"`
	Project     *Project     `gorm:"foreignKey:ProjectID" json:"-"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	AssigneeID  *uuid.UUID   `gorm:"type:uuid;index" json:"assignee_id,omitempty"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Subtasks are owned by the task; always read them through the
	// subtask repository instead of relying on this field being loaded.
	Subtasks []Subtask `gorm:"foreignKey:ParentTaskID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = TaskStatusToDo
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	return nil
}
