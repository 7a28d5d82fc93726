package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skillhub-backend-go/internal/config"
	"skillhub-backend-go/internal/core"
	"skillhub-backend-go/internal/db"
	"skillhub-backend-go/internal/middleware"
)

// SetupRoutes configures all application routes with their handlers and
// middleware. Global middleware (logging, recovery, CORS) is expected to be
// applied to the router before this is called, typically in main.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	ledgerService core.LedgerService,
	noteService core.NoteService,
	jobService core.JobService,
	quizService core.QuizService,
) {
	// Firebase Auth client must be available after db.InitFirestore().
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("CRITICAL_SETUP_ERROR: Firebase Auth client is not initialized. Routes will not be set up.")
		panic("Firebase Auth client is nil during route setup")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	authHandler := NewAuthHandler(firebaseAuthClient, ledgerService)
	profileHandler := NewProfileHandler(ledgerService)
	noteHandler := NewNoteHandler(noteService)
	jobHandler := NewJobHandler(jobService)
	quizHandler := NewQuizHandler(quizService)

	apiV1 := router.Group("/api/v1")
	{
		// Identity endpoints. Sign-in itself happens client-side against the
		// identity provider; the backend consumes the resulting ID tokens.
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.SignUp)
			authGroup.POST("/signout", authMW.VerifyToken(), authHandler.SignOut)
		}

		// Profile (ledger) endpoints.
		profilesGroup := apiV1.Group("/profiles")
		{
			profilesGroup.POST("/initialize", authMW.VerifyToken(), authHandler.InitializeProfile)
			profilesGroup.GET("/me", authMW.VerifyToken(), profileHandler.GetCurrentProfile)
			profilesGroup.PATCH("/me", authMW.VerifyToken(), profileHandler.UpdateCurrentProfile)
		}

		// Notes: browsing is public, contributing requires a signed-in user.
		notesGroup := apiV1.Group("/notes")
		{
			notesGroup.GET("", noteHandler.ListNotes)
			notesGroup.GET("/mine", authMW.VerifyToken(), noteHandler.ListMyNotes)
			notesGroup.POST("", authMW.VerifyToken(), noteHandler.CreateNote)
		}

		// Jobs (gigs): the board is public, posting and completing are not.
		jobsGroup := apiV1.Group("/jobs")
		{
			jobsGroup.GET("", jobHandler.ListJobs)
			jobsGroup.POST("", authMW.VerifyToken(), jobHandler.CreateJob)
			jobsGroup.POST("/:jobId/complete", authMW.VerifyToken(), jobHandler.CompleteJob)
		}

		// Quizzes: browsing is public (sanitized), submitting requires auth.
		quizzesGroup := apiV1.Group("/quizzes")
		{
			quizzesGroup.GET("", quizHandler.ListQuizzes)
			quizzesGroup.GET("/:quizId", quizHandler.GetQuiz)
			quizzesGroup.POST("/:quizId/submit", authMW.VerifyToken(), quizHandler.SubmitQuiz)
		}

		// Attempt history for the signed-in user.
		apiV1.GET("/attempts/me", authMW.VerifyToken(), quizHandler.ListMyAttempts)
	}

	// General health check endpoint, outside the versioned API group.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "SkillHub backend is healthy."})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
