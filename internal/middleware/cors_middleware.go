package middleware

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"skillhub-backend-go/internal/config"
)

// CORSMiddleware configures Cross-Origin Resource Sharing for the SPA client.
// It allows requests from the CLIENT_URL specified in the application
// configuration and the common methods and headers the client uses.
func CORSMiddleware(appConfig *config.Config) gin.HandlerFunc {
	if appConfig == nil || appConfig.ClientURL == "" {
		log.Fatal("CRITICAL_ERROR: appConfig.ClientURL is not configured for CORSMiddleware.")
		panic("ClientURL for CORS is not configured")
	}

	return cors.New(cors.Config{
		AllowOrigins: []string{appConfig.ClientURL},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		// "Authorization" is required for token-based auth.
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
