package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-sparkshield-backend/config"
	_ "go-sparkshield-backend/docs" // Important for Swagger
	v1 "go-sparkshield-backend/internal/delivery/http/v1"
	"go-sparkshield-backend/internal/repository/firebasedb"
	"go-sparkshield-backend/internal/usecase"
	"go-sparkshield-backend/pkg/email"
	"go-sparkshield-backend/pkg/firebase"
	"go-sparkshield-backend/pkg/gemini"
	"go-sparkshield-backend/pkg/logger"
)

// @title           SparkShield Backend API
// @version         1.0
// @description     Quote intake and chat relay backend for the SparkShield fire-safety site.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Environment)
	logger.Log.Info("Starting sparkshield backend", "port", cfg.Port, "env", cfg.Environment)

	// 3. Setup Firebase (the only fatal startup condition)
	dbClient, err := firebase.NewDatabaseClient(context.Background(), cfg)
	if err != nil {
		logger.Log.Error("Failed to load Firebase credentials", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	quoteRepo := firebasedb.NewQuoteRepository(dbClient)

	// 5. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - quote notifications will fail")
	}

	// 6. Setup Gemini Client (missing key is per-request, not fatal)
	aiClient := gemini.NewClient(cfg.GeminiAPIKey)
	if !aiClient.IsConfigured() {
		logger.Log.Warn("Gemini API key missing - chat endpoint will be unavailable")
	}

	// 7. Setup UseCases
	validate := validator.New()
	quoteUC := usecase.NewQuoteUsecase(quoteRepo, emailService, validate)
	chatUC := usecase.NewChatUsecase(aiClient)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		QuoteUC: quoteUC,
		ChatUC:  chatUC,
		Config:  cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Host, cfg.Port),
		Handler: router,
	}

	go func() {
		logger.Log.Info("Server is running", "addr", srv.Addr, "domain", cfg.Domain)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
