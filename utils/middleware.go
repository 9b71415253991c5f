package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const UserIDHeader = "X-User-Id"

// RequireUserID trusts the caller-supplied X-User-Id header and stores the
// parsed id under "userID" for the handlers.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(UserIDHeader)
		if header == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": UserIDHeader + " header required"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(header)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + UserIDHeader + " header"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the Gin context
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		return uuid.UUID{}, fmt.Errorf("user ID not found in context")
	}

	switch userID := userIDVal.(type) {
	case uuid.UUID:
		return userID, nil
	case string:
		return uuid.Parse(userID)
	default:
		return uuid.UUID{}, fmt.Errorf("user ID is of unknown type: %T", userID)
	}
}
