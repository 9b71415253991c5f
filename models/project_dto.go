package models

import "github.com/google/uuid"

type ProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StartDate   *Date  `json:"start_date" binding:"required"`
	EndDate     *Date  `json:"end_date" binding:"required"`
}

type ProjectResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	StartDate   Date          `json:"start_date"`
	EndDate     Date          `json:"end_date"`
	Status      ProjectStatus `json:"status"`
	TeamID      uuid.UUID     `json:"team_id"`
	CreatedBy   uuid.UUID     `json:"created_by"`
}

type DeleteProjectResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
