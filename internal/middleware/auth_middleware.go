package middleware

import (
	"log"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"skillhub-backend-go/internal/core"
)

// SessionContextKey is the Gin context key under which the authenticated
// session is stored by VerifyToken.
const SessionContextKey = "session"

// ErrorResponse is a local definition for sending standardized error
// messages. It mirrors the one in internal/api to avoid an import cycle.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware provides Gin middleware for Firebase token authentication.
type AuthMiddleware struct {
	firebaseAuthClient *auth.Client
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
// It panics if the firebaseAuthClient is nil, as routes cannot be secured
// without it.
func NewAuthMiddleware(fbAuthClient *auth.Client) *AuthMiddleware {
	if fbAuthClient == nil {
		log.Fatal("CRITICAL_ERROR: Firebase Auth client is not initialized for AuthMiddleware.")
		panic("Firebase Auth client is not initialized for AuthMiddleware")
	}
	return &AuthMiddleware{firebaseAuthClient: fbAuthClient}
}

// VerifyToken verifies a Firebase ID token from the Authorization header.
// On success it stores a core.Session in the Gin context; otherwise the
// request is rejected with 401 (the Unauthenticated case — the client picks
// its own "Please sign in" wording).
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
			return
		}
		idToken := parts[1]

		token, err := m.firebaseAuthClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			// Generic message to the client; details stay server-side.
			log.Printf("AuthMiddleware: Error verifying Firebase ID token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
			return
		}

		sess := core.Session{UID: token.UID}
		if email, ok := token.Claims["email"].(string); ok {
			sess.Email = email
		}
		if name, ok := token.Claims["name"].(string); ok {
			sess.DisplayName = name
		}
		c.Set(SessionContextKey, sess)

		c.Next()
	}
}

// SessionFromContext extracts the session placed by VerifyToken. The boolean
// is false when the middleware did not run for this request.
func SessionFromContext(c *gin.Context) (core.Session, bool) {
	raw, exists := c.Get(SessionContextKey)
	if !exists {
		return core.Session{}, false
	}
	sess, ok := raw.(core.Session)
	if !ok || sess.UID == "" {
		return core.Session{}, false
	}
	return sess, true
}
