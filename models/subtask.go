package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subtask struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `json:"description"`
	ParentTaskID uuid.UUID  `gorm:"type:uuid;not null;index" json:"parent_task_id"`
	ParentTask   *Task      `gorm:"foreignKey:ParentTaskID" json:"-"`
	Status       TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	AssigneeID   *uuid.UUID `gorm:"type:uuid" json:"assignee_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (s *Subtask) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = TaskStatusToDo
	}
	return nil
}
