package services

import (
	"context"
	"fmt"
	"time"

	"collabspace/models"
	"collabspace/repository"
	"collabspace/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProjectService struct {
	Store  *repository.Store
	Events EventPublisher
}

// NewProjectService creates a project service. events may be nil.
func NewProjectService(store *repository.Store, events EventPublisher) *ProjectService {
	return &ProjectService{Store: store, Events: events}
}

// CreateProject creates the project and its "<name> Team" in one
// transaction; on failure neither row exists.
func (s *ProjectService) CreateProject(ctx context.Context, req models.ProjectRequest, createdBy uuid.UUID) (*models.ProjectResponse, error) {
	var project models.Project
	err := s.Store.Transaction(ctx, func(tx *repository.Store) error {
		team := &models.Team{
			Name:      models.TeamNameFor(req.Name),
			CreatedBy: createdBy,
		}
		if err := tx.Teams.Save(ctx, team); err != nil {
			return fmt.Errorf("save team: %w", err)
		}

		project = models.Project{
			Name:        req.Name,
			Description: req.Description,
			TeamID:      team.ID,
			CreatedBy:   createdBy,
			StartDate:   dateColumn(req.StartDate),
			EndDate:     dateColumn(req.EndDate),
			Status:      models.ProjectStatusActive,
		}
		if err := tx.Projects.Save(ctx, &project); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := utils.ToProjectResponse(&project)
	return &resp, nil
}

// UpdateProject overwrites name, description and dates. The team and the
// creator never change.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID uuid.UUID, req models.ProjectRequest, createdBy uuid.UUID) (*models.ProjectResponse, error) {
	var project *models.Project
	err := s.Store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		project, err = utils.NewProjectValidator(tx.Projects).EnsureProjectExists(ctx, projectID)
		if err != nil {
			return err
		}

		project.Name = req.Name
		project.Description = req.Description
		project.StartDate = dateColumn(req.StartDate)
		project.EndDate = dateColumn(req.EndDate)
		return tx.Projects.Save(ctx, project)
	})
	if err != nil {
		return nil, err
	}

	resp := utils.ToProjectResponse(project)
	return &resp, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, projectID uuid.UUID) (*models.ProjectResponse, error) {
	project, err := utils.NewProjectValidator(s.Store.Projects).EnsureProjectExists(ctx, projectID)
	if err != nil {
		return nil, err
	}
	resp := utils.ToProjectResponse(project)
	return &resp, nil
}

func (s *ProjectService) GetProjectsByCreator(ctx context.Context, createdBy uuid.UUID) ([]models.ProjectResponse, error) {
	projects, err := s.Store.Projects.FindByCreator(ctx, createdBy)
	if err != nil {
		return nil, err
	}
	return utils.ToProjectResponses(projects), nil
}

// DeleteProject removes the project, its team, and its tasks together with
// their subtasks and link rows.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID uuid.UUID) (*models.DeleteProjectResponse, error) {
	var project *models.Project
	var taskIDs []uuid.UUID
	err := s.Store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		project, err = utils.NewProjectValidator(tx.Projects).EnsureProjectExists(ctx, projectID)
		if err != nil {
			return err
		}

		taskIDs, err = tx.Tasks.IDsByProject(ctx, project.ID)
		if err != nil {
			return err
		}
		if err := deleteTasks(ctx, tx, taskIDs); err != nil {
			return err
		}
		if err := tx.Projects.DeleteByID(ctx, project.ID); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		if err := tx.Teams.DeleteByID(ctx, project.TeamID); err != nil {
			return fmt.Errorf("delete team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Events != nil {
		now := time.Now().UTC()
		for _, taskID := range taskIDs {
			s.Events.Publish(models.TaskEvent{
				Type:       models.EventTaskDeleted,
				ProjectID:  project.ID,
				TaskID:     taskID,
				OccurredAt: now,
			})
		}
	}

	return &models.DeleteProjectResponse{
		Status:  "success",
		Message: project.Name + " has been deleted",
	}, nil
}

func dateColumn(d *models.Date) datatypes.Date {
	if d == nil {
		return datatypes.Date{}
	}
	return d.Column()
}
