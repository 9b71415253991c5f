package repository

import (
	"context"

	"collabspace/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository loads tasks with their project so responses can carry the
// project name.
type TaskRepository struct {
	Repository[models.Task]
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{Repository[models.Task]{DB: db, Entity: "Task"}}
}

func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := r.DB.WithContext(ctx).Preload("Project").First(&task, "id = ?", id).Error; err != nil {
		return nil, translate(err, r.Entity, id)
	}
	return &task, nil
}

func (r *TaskRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.Task, error) {
	return r.find(ctx, r.DB.Where("project_id = ?", projectID))
}

func (r *TaskRepository) FindByProjectIDAndAssigneeID(ctx context.Context, projectID, assigneeID uuid.UUID) ([]models.Task, error) {
	return r.find(ctx, r.DB.Where("project_id = ? AND assignee_id = ?", projectID, assigneeID))
}

func (r *TaskRepository) FindByAssigneeID(ctx context.Context, assigneeID uuid.UUID) ([]models.Task, error) {
	return r.find(ctx, r.DB.Where("assignee_id = ?", assigneeID))
}

// FindLinkedTasks returns the targets of taskID's outgoing links in the order
// the links were made.
func (r *TaskRepository) FindLinkedTasks(ctx context.Context, taskID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.DB.WithContext(ctx).
		Joins("JOIN task_linked_work_items l ON l.linked_task_id = tasks.id").
		Where("l.task_id = ?", taskID).
		Order("l.created_at, tasks.id").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) IDsByProject(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.DB.WithContext(ctx).Model(&models.Task{}).
		Where("project_id = ?", projectID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *TaskRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Task{}).Error
}

func (r *TaskRepository) find(ctx context.Context, scope *gorm.DB) ([]models.Task, error) {
	var tasks []models.Task
	if err := scope.WithContext(ctx).
		Preload("Project").
		Order("created_at, id").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
