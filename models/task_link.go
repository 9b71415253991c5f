package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskLink is one row of the linked-work-items join table. The edge is
// directed: it is visible from TaskID only.
type TaskLink struct {
	TaskID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"task_id"`
	LinkedTaskID uuid.UUID `gorm:"type:uuid;primaryKey" json:"linked_task_id"`
	Task         *Task     `gorm:"foreignKey:TaskID" json:"-"`
	LinkedTask   *Task     `gorm:"foreignKey:LinkedTaskID" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (TaskLink) TableName() string {
	return "task_linked_work_items"
}
