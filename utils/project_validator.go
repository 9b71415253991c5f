package utils

import (
	"context"

	"collabspace/models"
	"collabspace/repository"

	"github.com/google/uuid"
)

// ProjectValidator resolves project ids for the services.
type ProjectValidator struct {
	Projects *repository.ProjectRepository
}

func NewProjectValidator(projects *repository.ProjectRepository) *ProjectValidator {
	return &ProjectValidator{Projects: projects}
}

// EnsureProjectExists returns the project or a *repository.NotFoundError.
func (v *ProjectValidator) EnsureProjectExists(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	return v.Projects.FindByID(ctx, projectID)
}
