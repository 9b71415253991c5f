package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the CRUD surface shared by every entity. Entity names the
// type in NotFoundError messages.
type Repository[T any] struct {
	DB     *gorm.DB
	Entity string
}

func (r *Repository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.DB.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		return nil, translate(err, r.Entity, id)
	}
	return &entity, nil
}

func (r *Repository[T]) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	var entity T
	if err := r.DB.WithContext(ctx).Model(&entity).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save inserts the entity when its primary key is unset or unknown and
// updates every column otherwise. Loaded associations are never written.
func (r *Repository[T]) Save(ctx context.Context, entity *T) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

func (r *Repository[T]) Delete(ctx context.Context, entity *T) error {
	return r.DB.WithContext(ctx).Delete(entity).Error
}

func (r *Repository[T]) DeleteByID(ctx context.Context, id uuid.UUID) error {
	var entity T
	return r.DB.WithContext(ctx).Delete(&entity, "id = ?", id).Error
}
