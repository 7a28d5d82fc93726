package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillhub-backend-go/internal/core"
	"skillhub-backend-go/internal/middleware"
	"skillhub-backend-go/internal/models"
)

// ProfileHandler handles profile-related API endpoints.
type ProfileHandler struct {
	ledgerService core.LedgerService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(ls core.LedgerService) *ProfileHandler {
	return &ProfileHandler{ledgerService: ls}
}

// GetCurrentProfile handles GET /profiles/me.
func (h *ProfileHandler) GetCurrentProfile(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	profile, err := h.ledgerService.GetProfile(c.Request.Context(), sess.UID)
	if err != nil {
		if errors.Is(err, core.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
			return
		}
		log.Printf("GetCurrentProfile Error: GetProfile failed for %s: %v", sess.UID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateCurrentProfile handles PATCH /profiles/me. Only the descriptive
// fields (name, role, bio) can be changed; counters are off limits.
func (h *ProfileHandler) UpdateCurrentProfile(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	profile, err := h.ledgerService.UpdateProfile(c.Request.Context(), sess.UID, req)
	if err != nil {
		if errors.Is(err, core.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
			return
		}
		log.Printf("UpdateCurrentProfile Error: UpdateProfile failed for %s: %v", sess.UID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
