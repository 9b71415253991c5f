package repository

import (
	"context"

	"collabspace/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskLinkRepository struct {
	DB *gorm.DB
}

func NewTaskLinkRepository(db *gorm.DB) *TaskLinkRepository {
	return &TaskLinkRepository{DB: db}
}

func (r *TaskLinkRepository) Exists(ctx context.Context, taskID, linkedTaskID uuid.UUID) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.TaskLink{}).
		Where("task_id = ? AND linked_task_id = ?", taskID, linkedTaskID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the directed pair. A pair that already exists is left as is.
func (r *TaskLinkRepository) Create(ctx context.Context, taskID, linkedTaskID uuid.UUID) error {
	link := &models.TaskLink{TaskID: taskID, LinkedTaskID: linkedTaskID}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error
}

func (r *TaskLinkRepository) Delete(ctx context.Context, taskID, linkedTaskID uuid.UUID) (bool, error) {
	result := r.DB.WithContext(ctx).
		Where("task_id = ? AND linked_task_id = ?", taskID, linkedTaskID).
		Delete(&models.TaskLink{})
	return result.RowsAffected > 0, result.Error
}

func (r *TaskLinkRepository) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]models.TaskLink, error) {
	var links []models.TaskLink
	if err := r.DB.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// DeleteTouching removes every link whose source or target is in taskIDs.
func (r *TaskLinkRepository) DeleteTouching(ctx context.Context, taskIDs []uuid.UUID) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Where("task_id IN ? OR linked_task_id IN ?", taskIDs, taskIDs).
		Delete(&models.TaskLink{}).Error
}
