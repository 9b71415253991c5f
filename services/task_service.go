package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"collabspace/models"
	"collabspace/repository"
	"collabspace/utils"

	"github.com/google/uuid"
)

// EventPublisher receives task events after the write that caused them has
// committed.
type EventPublisher interface {
	Publish(event models.TaskEvent)
}

type TaskService struct {
	Store  *repository.Store
	Events EventPublisher
}

// NewTaskService creates a task service. events may be nil.
func NewTaskService(store *repository.Store, events EventPublisher) *TaskService {
	return &TaskService{Store: store, Events: events}
}

// CreateTask creates a TO_DO task under an existing project. Any
// linked_task_ids are linked in the same transaction.
func (s *TaskService) CreateTask(ctx context.Context, req models.TaskRequest, userID uuid.UUID) (*models.TaskResponse, error) {
	var projectID uuid.UUID
	if req.ProjectID != nil {
		projectID = *req.ProjectID
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      models.TaskStatusToDo,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	err := s.Store.Transaction(ctx, func(tx *repository.Store) error {
		project, err := utils.NewProjectValidator(tx.Projects).EnsureProjectExists(ctx, projectID)
		if err != nil {
			return err
		}
		task.ProjectID = project.ID
		task.Project = project

		if err := tx.Tasks.Save(ctx, task); err != nil {
			return fmt.Errorf("save task: %w", err)
		}
		for _, linkedTaskID := range req.LinkedTaskIDs {
			if _, err := linkTasks(ctx, tx, task.ID, linkedTaskID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.assemble(ctx, task)
	if err != nil {
		return nil, err
	}
	s.publish(models.EventTaskCreated, resp)
	return resp, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, taskID uuid.UUID) (*models.TaskResponse, error) {
	task, err := s.Store.Tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, task)
}

// GetTasksByProject lists the project's tasks, optionally narrowed to one
// assignee.
func (s *TaskService) GetTasksByProject(ctx context.Context, projectID uuid.UUID, assigneeID *uuid.UUID) ([]models.TaskResponse, error) {
	var tasks []models.Task
	var err error
	if assigneeID != nil {
		tasks, err = s.Store.Tasks.FindByProjectIDAndAssigneeID(ctx, projectID, *assigneeID)
	} else {
		tasks, err = s.Store.Tasks.FindByProjectID(ctx, projectID)
	}
	if err != nil {
		return nil, err
	}
	return s.assembleAll(ctx, tasks)
}

func (s *TaskService) GetTasksByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]models.TaskResponse, error) {
	tasks, err := s.Store.Tasks.FindByAssigneeID(ctx, assigneeID)
	if err != nil {
		return nil, err
	}
	return s.assembleAll(ctx, tasks)
}

// UpdateTask applies the fields present in req. Status is not touched.
func (s *TaskService) UpdateTask(ctx context.Context, taskID uuid.UUID, req models.TaskUpdateRequest, userID uuid.UUID) (*models.TaskResponse, error) {
	var task *models.Task
	err := s.Store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		task, err = tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return err
		}

		if req.Title != nil {
			task.Title = *req.Title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.AssigneeID != nil {
			assigneeID := *req.AssigneeID
			task.AssigneeID = &assigneeID
		}
		if req.DueDate != nil {
			dueDate := *req.DueDate
			task.DueDate = &dueDate
		}
		if req.Priority != nil {
			task.Priority = *req.Priority
		}
		return tx.Tasks.Save(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.assemble(ctx, task)
	if err != nil {
		return nil, err
	}
	s.publish(models.EventTaskUpdated, resp)
	return resp, nil
}

// UpdateTaskStatus overwrites the status. Every transition is allowed.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status models.TaskStatus) (*models.TaskResponse, error) {
	var task *models.Task
	err := s.Store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		task, err = tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		task.Status = status
		return tx.Tasks.Save(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.assemble(ctx, task)
	if err != nil {
		return nil, err
	}
	s.publish(models.EventTaskStatusChanged, resp)
	return resp, nil
}

// DeleteTask removes the task, its subtasks, and every link row naming it
// on either side.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	var task *models.Task
	err := s.Store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		task, err = tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		return deleteTasks(ctx, tx, []uuid.UUID{task.ID})
	})
	if err != nil {
		return err
	}

	if s.Events != nil {
		s.Events.Publish(models.TaskEvent{
			Type:       models.EventTaskDeleted,
			ProjectID:  task.ProjectID,
			TaskID:     task.ID,
			OccurredAt: time.Now().UTC(),
		})
	}
	return nil
}

// AddSubtask checks the parent and inserts the subtask in one transaction.
func (s *TaskService) AddSubtask(ctx context.Context, taskID uuid.UUID, req models.SubtaskRequest) (*models.SubtaskResponse, error) {
	var parent *models.Task
	subtask := &models.Subtask{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Status:      models.TaskStatusToDo,
	}
	err := s.Store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		parent, err = tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return repository.NewNotFound("Parent task", taskID)
			}
			return err
		}

		subtask.ParentTaskID = parent.ID
		if err := tx.Subtasks.Save(ctx, subtask); err != nil {
			return fmt.Errorf("save subtask: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := utils.ToSubtaskResponse(subtask)
	if s.Events != nil {
		s.Events.Publish(models.TaskEvent{
			Type:       models.EventSubtaskAdded,
			ProjectID:  parent.ProjectID,
			TaskID:     parent.ID,
			Subtask:    &resp,
			OccurredAt: time.Now().UTC(),
		})
	}
	return &resp, nil
}

// GetSubtasksByTask does not check that the parent exists.
func (s *TaskService) GetSubtasksByTask(ctx context.Context, taskID uuid.UUID) ([]models.SubtaskResponse, error) {
	subtasks, err := s.Store.Subtasks.FindByParentTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return utils.ToSubtaskResponses(subtasks), nil
}

// AddLinkedWorkItem records the directed link taskID -> linkedTaskID. The
// linked task does not gain a link back. Repeating the call changes nothing.
func (s *TaskService) AddLinkedWorkItem(ctx context.Context, taskID, linkedTaskID uuid.UUID) (*models.TaskResponse, error) {
	var task *models.Task
	var created bool
	err := s.Store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		task, err = tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		created, err = linkTasks(ctx, tx, task.ID, linkedTaskID)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.assemble(ctx, task)
	if err != nil {
		return nil, err
	}
	if created {
		s.publish(models.EventLinkAdded, resp)
	}
	return resp, nil
}

// RemoveLinkedWorkItem drops the directed link if it exists.
func (s *TaskService) RemoveLinkedWorkItem(ctx context.Context, taskID, linkedTaskID uuid.UUID) (*models.TaskResponse, error) {
	task, err := s.Store.Tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	removed, err := s.Store.Links.Delete(ctx, task.ID, linkedTaskID)
	if err != nil {
		return nil, fmt.Errorf("delete link: %w", err)
	}

	resp, err := s.assemble(ctx, task)
	if err != nil {
		return nil, err
	}
	if removed {
		s.publish(models.EventLinkRemoved, resp)
	}
	return resp, nil
}

// assemble re-reads subtasks and link targets from the store rather than
// trusting anything loaded on task.
func (s *TaskService) assemble(ctx context.Context, task *models.Task) (*models.TaskResponse, error) {
	subtasks, err := s.Store.Subtasks.FindByParentTaskID(ctx, task.ID)
	if err != nil {
		return nil, fmt.Errorf("load subtasks: %w", err)
	}
	linked, err := s.Store.Tasks.FindLinkedTasks(ctx, task.ID)
	if err != nil {
		return nil, fmt.Errorf("load linked work items: %w", err)
	}
	resp := utils.ToTaskResponse(task, subtasks, linked)
	return &resp, nil
}

func (s *TaskService) assembleAll(ctx context.Context, tasks []models.Task) ([]models.TaskResponse, error) {
	resp := make([]models.TaskResponse, 0, len(tasks))
	for i := range tasks {
		item, err := s.assemble(ctx, &tasks[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *item)
	}
	return resp, nil
}

func (s *TaskService) publish(eventType models.TaskEventType, task *models.TaskResponse) {
	if s.Events == nil {
		return
	}
	s.Events.Publish(models.TaskEvent{
		Type:       eventType,
		ProjectID:  task.ProjectID,
		TaskID:     task.ID,
		Task:       task,
		OccurredAt: time.Now().UTC(),
	})
}

// linkTasks inserts taskID -> linkedTaskID unless it is already there and
// reports whether a row was added.
func linkTasks(ctx context.Context, tx *repository.Store, taskID, linkedTaskID uuid.UUID) (bool, error) {
	exists, err := tx.Tasks.ExistsByID(ctx, linkedTaskID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, repository.NewNotFound("Linked task", linkedTaskID)
	}

	linked, err := tx.Links.Exists(ctx, taskID, linkedTaskID)
	if err != nil || linked {
		return false, err
	}
	if err := tx.Links.Create(ctx, taskID, linkedTaskID); err != nil {
		return false, fmt.Errorf("save link: %w", err)
	}
	return true, nil
}

// deleteTasks removes link rows, subtasks and then the tasks themselves.
func deleteTasks(ctx context.Context, tx *repository.Store, taskIDs []uuid.UUID) error {
	if len(taskIDs) == 0 {
		return nil
	}
	if err := tx.Links.DeleteTouching(ctx, taskIDs); err != nil {
		return fmt.Errorf("delete links: %w", err)
	}
	if err := tx.Subtasks.DeleteByParentTaskIDs(ctx, taskIDs); err != nil {
		return fmt.Errorf("delete subtasks: %w", err)
	}
	if err := tx.Tasks.DeleteByIDs(ctx, taskIDs); err != nil {
		return fmt.Errorf("delete tasks: %w", err)
	}
	return nil
}
