package repository

import (
	"context"

	"collabspace/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	Repository[models.Project]
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{Repository[models.Project]{DB: db, Entity: "Project"}}
}

func (r *ProjectRepository) FindByCreator(ctx context.Context, createdBy uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	if err := r.DB.WithContext(ctx).
		Where("created_by = ?", createdBy).
		Order("created_at, id").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

type TeamRepository struct {
	Repository[models.Team]
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{Repository[models.Team]{DB: db, Entity: "Team"}}
}

func (r *ProjectRepository) FindByTeamID(ctx context.Context, teamID uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := r.DB.WithContext(ctx).First(&project, "team_id = ?", teamID).Error; err != nil {
		return nil, translate(err, r.Entity, teamID)
	}
	return &project, nil
}
