package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"collabspace/database"
	"collabspace/models"
	"collabspace/repository"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repository.NewStore(db)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.TaskEvent
}

func (p *recordingPublisher) Publish(event models.TaskEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []models.TaskEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.TaskEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func projectRequest(name string) models.ProjectRequest {
	start := models.NewDate(2024, 1, 1)
	end := models.NewDate(2024, 3, 31)
	return models.ProjectRequest{
		Name:        name,
		Description: "desc",
		StartDate:   &start,
		EndDate:     &end,
	}
}

func mustCreateProject(t *testing.T, svc *ProjectService, name string) *models.ProjectResponse {
	t.Helper()
	project, err := svc.CreateProject(context.Background(), projectRequest(name), uuid.New())
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	return project
}

func mustCreateTask(t *testing.T, svc *TaskService, projectID uuid.UUID, title string) *models.TaskResponse {
	t.Helper()
	task, err := svc.CreateTask(context.Background(), models.TaskRequest{
		Title:     title,
		ProjectID: &projectID,
	}, uuid.New())
	if err != nil {
		t.Fatalf("CreateTask(%s): %v", title, err)
	}
	return task
}
