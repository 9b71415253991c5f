package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `json:"description"`
	TeamID       uuid.UUID      `gorm:"type:uuid;not null" json:"team_id"`
	Team         *Team          `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	CreatedBy    uuid.UUID      `gorm:"type:uuid;index" json:"created_by"`
	StartDate    datatypes.Date `json:"start_date"`
	EndDate      datatypes.Date `json:"end_date"`
	Status       ProjectStatus  `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	LastModified time.Time      `gorm:"autoUpdateTime" json:"last_modified"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = ProjectStatusActive
	}
	return nil
}
