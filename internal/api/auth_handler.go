package api

import (
	"log"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"skillhub-backend-go/internal/core"
	"skillhub-backend-go/internal/middleware"
	"skillhub-backend-go/internal/models"
)

// AuthHandler handles identity-provider backed endpoints: server-side
// sign-up, sign-out (token revocation), and profile initialization after a
// client-side sign-in.
type AuthHandler struct {
	authClient    *auth.Client
	ledgerService core.LedgerService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authClient *auth.Client, ls core.LedgerService) *AuthHandler {
	return &AuthHandler{authClient: authClient, ledgerService: ls}
}

// SignUp handles POST /auth/signup. It creates the account with the identity
// provider and the matching ledger profile in one call, so a signed-up user
// always has a profile.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	params := (&auth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password)
	if req.Name != "" {
		params = params.DisplayName(req.Name)
	}

	userRecord, err := h.authClient.CreateUser(c.Request.Context(), params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "An account with this email already exists"})
			return
		}
		log.Printf("SignUp Error: CreateUser failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create account"})
		return
	}

	sess := core.Session{UID: userRecord.UID, Email: req.Email, DisplayName: req.Name}
	profile, _, err := h.ledgerService.EnsureProfile(c.Request.Context(), sess)
	if err != nil {
		// The identity account exists; the profile will be created lazily on
		// the first sign-in instead.
		log.Printf("SignUp Warning: account %s created but profile creation failed: %v", userRecord.UID, err)
		c.JSON(http.StatusCreated, SignUpResponse{UID: userRecord.UID})
		return
	}

	c.JSON(http.StatusCreated, SignUpResponse{UID: userRecord.UID, Profile: profile})
}

// SignOut handles POST /auth/signout. Revoking refresh tokens invalidates
// the user's sessions on all devices; outstanding ID tokens expire naturally.
func (h *AuthHandler) SignOut(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.authClient.RevokeRefreshTokens(c.Request.Context(), sess.UID); err != nil {
		log.Printf("SignOut Error: RevokeRefreshTokens failed for %s: %v", sess.UID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign out"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Signed out"})
}

// InitializeProfile handles POST /profiles/initialize. Called by the client
// after sign-in to guarantee a ledger profile exists for the user. Idempotent.
func (h *AuthHandler) InitializeProfile(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	profile, created, err := h.ledgerService.EnsureProfile(c.Request.Context(), sess)
	if err != nil {
		log.Printf("InitializeProfile Error: EnsureProfile failed for %s: %v", sess.UID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initialize profile"})
		return
	}

	if created {
		c.JSON(http.StatusCreated, profile)
		return
	}
	c.JSON(http.StatusOK, profile)
}
