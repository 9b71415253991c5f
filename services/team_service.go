package services

import (
	"context"
	"errors"

	"collabspace/models"
	"collabspace/repository"

	"github.com/google/uuid"
)

// TeamService exposes the teams that project creation makes. Teams are
// read-only: they are created and deleted with their project.
type TeamService struct {
	Store *repository.Store
}

func NewTeamService(store *repository.Store) *TeamService {
	return &TeamService{Store: store}
}

// GetTeamByID returns the team together with the project it belongs to.
func (s *TeamService) GetTeamByID(ctx context.Context, teamID uuid.UUID) (*models.TeamResponse, error) {
	team, err := s.Store.Teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := &models.TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		CreatedBy: team.CreatedBy,
		CreatedAt: team.CreatedAt,
	}
	project, err := s.Store.Projects.FindByTeamID(ctx, team.ID)
	switch {
	case err == nil:
		resp.ProjectID = project.ID
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}
	return resp, nil
}
