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

// QuizHandler handles quiz and attempt related API endpoints.
type QuizHandler struct {
	quizService core.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(qs core.QuizService) *QuizHandler {
	return &QuizHandler{quizService: qs}
}

// ListQuizzes handles GET /quizzes. Correct answers are stripped from the
// payload.
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes(c.Request.Context())
	if err != nil {
		log.Printf("ListQuizzes Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list quizzes"})
		return
	}

	resp := make([]QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		resp = append(resp, toQuizResponse(quiz))
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuiz handles GET /quizzes/:quizId, sanitized like the listing.
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID := c.Param("quizId")
	if quizID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Quiz ID is required"})
		return
	}

	quiz, err := h.quizService.GetQuiz(c.Request.Context(), quizID)
	if err != nil {
		if errors.Is(err, core.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrQuizNotFound.Error()})
			return
		}
		log.Printf("GetQuiz Error for %s: %v", quizID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve quiz"})
		return
	}

	c.JSON(http.StatusOK, toQuizResponse(quiz))
}

// SubmitQuiz handles POST /quizzes/:quizId/submit. The submission is scored
// server-side, logged as an attempt, and the score credited as points.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	quizID := c.Param("quizId")
	if quizID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Quiz ID is required"})
		return
	}

	var req models.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	result, err := h.quizService.SubmitQuiz(c.Request.Context(), sess, quizID, req.Answers)
	if err != nil {
		if errors.Is(err, core.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrQuizNotFound.Error()})
			return
		}
		log.Printf("SubmitQuiz Error for %s (quiz %s): %v", sess.UID, quizID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit quiz"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListMyAttempts handles GET /attempts/me.
func (h *QuizHandler) ListMyAttempts(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	attempts, err := h.quizService.ListAttempts(c.Request.Context(), sess.UID)
	if err != nil {
		log.Printf("ListMyAttempts Error for %s: %v", sess.UID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list attempts"})
		return
	}
	c.JSON(http.StatusOK, attempts)
}
