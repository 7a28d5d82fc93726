package api

import "skillhub-backend-go/internal/models"

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message or code
	Details string `json:"details,omitempty"` // More specific details about the error, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// QuestionResponse is a question as exposed to clients: the correct answer
// is stripped so the quiz cannot be solved by inspecting the payload.
type QuestionResponse struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Points  int64    `json:"points,omitempty"`
}

// QuizResponse is a quiz as exposed to clients.
type QuizResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Desc      string             `json:"desc,omitempty"`
	Questions []QuestionResponse `json:"questions"`
}

// SignUpResponse is returned after a successful server-side sign-up.
type SignUpResponse struct {
	UID     string          `json:"uid"`
	Profile *models.Profile `json:"profile"`
}

func toQuizResponse(quiz *models.Quiz) QuizResponse {
	resp := QuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		Desc:      quiz.Desc,
		Questions: make([]QuestionResponse, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		resp.Questions = append(resp.Questions, QuestionResponse{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
			Points:  q.Points,
		})
	}
	return resp
}
