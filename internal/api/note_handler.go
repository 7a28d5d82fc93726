package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillhub-backend-go/internal/core"
	"skillhub-backend-go/internal/middleware"
	"skillhub-backend-go/internal/models"
)

// NoteHandler handles note-related API endpoints.
type NoteHandler struct {
	noteService core.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(ns core.NoteService) *NoteHandler {
	return &NoteHandler{noteService: ns}
}

// ListNotes handles GET /notes. The note catalog is public.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.noteService.ListNotes(c.Request.Context())
	if err != nil {
		log.Printf("ListNotes Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list notes"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

// ListMyNotes handles GET /notes/mine.
func (h *NoteHandler) ListMyNotes(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	notes, err := h.noteService.ListNotesByAuthor(c.Request.Context(), sess.UID)
	if err != nil {
		log.Printf("ListMyNotes Error for %s: %v", sess.UID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list notes"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

// CreateNote handles POST /notes. On success the response carries the new
// note and the author's credited profile.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	note, profile, err := h.noteService.CreateNote(c.Request.Context(), sess, req)
	if err != nil {
		log.Printf("CreateNote Error for %s: %v", sess.UID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"note": note, "profile": profile})
}
