package models

// SignUpRequest represents the request body for server-side account creation.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name,omitempty"`
}

// CreateNoteRequest represents the request body for contributing a note.
type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Preview string `json:"preview,omitempty"`
	Content string `json:"content,omitempty"`
}

// CreateJobRequest represents the request body for posting a gig.
// Price is optional; when omitted or non-positive the default applies.
type CreateJobRequest struct {
	Title string  `json:"title" binding:"required"`
	Desc  string  `json:"desc,omitempty"`
	Price float64 `json:"price,omitempty"`
}

// SubmitQuizRequest carries the submitted answers keyed by question ID.
type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers"`
}

// UpdateProfileRequest represents a partial profile update.
// Pointers distinguish "clear this field" from "field not provided".
type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty"`
	Bio  *string `json:"bio,omitempty"`
}
