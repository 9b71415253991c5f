package utils

import (
	"errors"
	"net/http"

	"collabspace/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RespondError maps service errors onto status codes.
func RespondError(c *gin.Context, err error) {
	var notFound *repository.NotFoundError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// ParseUUIDParam reads a path parameter as a UUID and writes a 400 when it
// is malformed.
func ParseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}
