package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"growlog/internal/analysis"
	"growlog/internal/config"
	"growlog/internal/database"
	"growlog/internal/handlers"
	"growlog/internal/questions"
	"growlog/internal/report"
	"growlog/internal/repository"
	"growlog/internal/security"
	"growlog/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Repositories
	parentRepo := repository.NewParentRepository(db)
	childRepo := repository.NewChildRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	// Services
	authService := service.NewAuthService(parentRepo, cfg.SessionDuration)
	diaryService := service.NewDiaryService(childRepo, answerRepo, questions.NewSelector(questions.DefaultCatalog()))

	builder := report.NewBuilder(answerRepo, analysis.NewDefaultAnalyzer())
	signer := security.NewShareTokenSigner(cfg.ShareTokenSecret, cfg.ShareTokenTTL)
	reportService := service.NewReportService(childRepo, builder, signer, cfg.AppBaseURL)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	// Handlers
	middleware := handlers.NewMiddleware(authService, security.NewRateLimiter(10, time.Minute))
	authHandler := handlers.NewAuthHandler(authService, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectBaseURL)
	diaryHandler := handlers.NewDiaryHandler(diaryService)
	reportHandler := handlers.NewReportHandler(reportService, diaryService, emailService)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.HandleFunc("GET /auth/google/start", authHandler.StartGoogleOAuth)
	mux.HandleFunc("GET /auth/google/callback", authHandler.GoogleOAuthCallback)

	mux.HandleFunc("POST /api/children", middleware.RequireAuth(diaryHandler.CreateChild))
	mux.HandleFunc("GET /api/children", middleware.RequireAuth(diaryHandler.ListChildren))
	mux.HandleFunc("GET /api/children/{id}/questions", middleware.RequireAuth(diaryHandler.DailyQuestions))
	mux.HandleFunc("POST /api/children/{id}/answers", middleware.RequireAuth(diaryHandler.SaveAnswer))
	mux.HandleFunc("GET /api/children/{id}/answers", middleware.RequireAuth(diaryHandler.DailyLog))

	mux.HandleFunc("GET /api/children/{id}/report", middleware.RequireAuth(reportHandler.GetReport))
	mux.HandleFunc("POST /api/children/{id}/report/share", middleware.RequireAuth(reportHandler.ShareReport))
	mux.HandleFunc("POST /api/children/{id}/report/email", middleware.RequireAuth(reportHandler.EmailReport))
	mux.HandleFunc("GET /api/shared/report", reportHandler.SharedReport)

	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go cleanupExpiredSessions(authService)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// cleanupExpiredSessions periodically removes expired sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		} else {
			log.Println("Expired sessions cleaned up")
		}
	}
}
