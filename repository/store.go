package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the repositories over one connection or transaction.
type Store struct {
	DB       *gorm.DB
	Projects *ProjectRepository
	Teams    *TeamRepository
	Tasks    *TaskRepository
	Subtasks *SubtaskRepository
	Links    *TaskLinkRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		DB:       db,
		Projects: NewProjectRepository(db),
		Teams:    NewTeamRepository(db),
		Tasks:    NewTaskRepository(db),
		Subtasks: NewSubtaskRepository(db),
		Links:    NewTaskLinkRepository(db),
	}
}

// Transaction runs fn against a Store bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
