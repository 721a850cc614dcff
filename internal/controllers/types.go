package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/models"
	sw_uuid "github.com/spendwise/backend/internal/uuid"
)

type URIID struct {
	ID sw_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryOwner struct {
	OwnerID string `form:"ownerId" example:"user_2abc"` // The owner key. "public" for the shared guest workspace
}

type BodyOwner struct {
	OwnerID string `json:"ownerId" example:"user_2abc"` // The owner key. "public" for the shared guest workspace
}

type DeleteResponse struct {
	Message string `json:"message" example:"Deleted"`
}

// ownerID returns the owner key for the request.
//
// The owner key from the request body takes precedence over the ownerId
// query parameter. If neither is set, ErrMissingOwner is returned.
func ownerID(c *gin.Context, fromBody string) (string, error) {
	owner := strings.TrimSpace(fromBody)
	if owner == "" {
		owner = strings.TrimSpace(c.Query("ownerId"))
	}

	if owner == "" {
		return "", models.ErrMissingOwner
	}

	return owner, nil
}
