package repository

import (
	"context"

	"collabspace/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubtaskRepository struct {
	Repository[models.Subtask]
}

func NewSubtaskRepository(db *gorm.DB) *SubtaskRepository {
	return &SubtaskRepository{Repository[models.Subtask]{DB: db, Entity: "Subtask"}}
}

// FindByParentTaskID returns subtasks in insertion order. An unknown parent
// yields an empty slice.
func (r *SubtaskRepository) FindByParentTaskID(ctx context.Context, parentTaskID uuid.UUID) ([]models.Subtask, error) {
	subtasks := []models.Subtask{}
	if err := r.DB.WithContext(ctx).
		Where("parent_task_id = ?", parentTaskID).
		Order("created_at, id").
		Find(&subtasks).Error; err != nil {
		return nil, err
	}
	return subtasks, nil
}

func (r *SubtaskRepository) DeleteByParentTaskIDs(ctx context.Context, parentTaskIDs []uuid.UUID) error {
	if len(parentTaskIDs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Where("parent_task_id IN ?", parentTaskIDs).
		Delete(&models.Subtask{}).Error
}
