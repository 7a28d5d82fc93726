package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"skillhub-backend-go/internal/api"
	"skillhub-backend-go/internal/config"
	"skillhub-backend-go/internal/core"
	"skillhub-backend-go/internal/db"
	"skillhub-backend-go/internal/middleware"
)

func main() {
	// --- 1. Initialize Logger (Zap) ---
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Zap logger initialized successfully.")

	// --- 2. Load Application Configuration ---
	// A local .env is optional; real deployments set environment variables.
	if err := godotenv.Load(); err == nil {
		zapLogger.Info("Loaded environment from .env file.")
	}
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 3. Initialize Firebase Admin SDK (Firestore and Auth clients) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firestore and Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized successfully.")

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firestoreClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firestore client is nil after initialization. Application cannot start.")
	}
	if firebaseAuthClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase Auth client is nil after initialization. Application cannot start.")
	}

	// --- 4. Initialize Repositories ---
	profileRepo := db.NewFirestoreProfileRepository(firestoreClient)
	noteRepo := db.NewFirestoreNoteRepository(firestoreClient)
	jobRepo := db.NewFirestoreJobRepository(firestoreClient)
	quizRepo := db.NewFirestoreQuizRepository(firestoreClient)
	attemptRepo := db.NewFirestoreAttemptRepository(firestoreClient)
	zapLogger.Info("Repositories initialized successfully.")

	// --- 5. Initialize Services ---
	ledgerService := core.NewLedgerService(profileRepo, appConfig.LedgerAtomicIncrements)
	noteService := core.NewNoteService(noteRepo, ledgerService)
	jobService := core.NewJobService(jobRepo, ledgerService)
	quizService := core.NewQuizService(quizRepo, attemptRepo, ledgerService)
	zapLogger.Info("Core services initialized successfully.",
		zap.Bool("ledgerAtomicIncrements", appConfig.LedgerAtomicIncrements))

	// --- 6. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	// gin.New() keeps full control over the middleware stack.
	router := gin.New()

	// --- 7. Apply Global Middleware (order matters) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured. API might not be accessible from a web frontend.")
	}

	// --- 8. Setup API Routes ---
	api.SetupRoutes(
		router,
		appConfig,
		zapLogger,
		ledgerService,
		noteService,
		jobService,
		quizService,
	)

	// --- 9. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 10. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
