package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shario-backend/config"
	_ "shario-backend/docs" // Important for Swagger
	v1 "shario-backend/internal/delivery/http/v1"
	"shario-backend/internal/repository/mongodb"
	"shario-backend/internal/usecase"
	"shario-backend/pkg/ai"
	"shario-backend/pkg/auth"
	"shario-backend/pkg/database"
	"shario-backend/pkg/logger"
)

// @title           Shario API
// @version         1.0
// @description     Backend for the Shario learning-resource sharing platform.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting Shario backend", "port", cfg.Port)

	// 3. Setup Database
	db, err := database.NewMongoConnection(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Client().Disconnect(ctx)
	}()

	// 4. Setup Repositories
	userRepo := mongodb.NewUserRepository(db)
	resourceRepo := mongodb.NewResourceRepository(db)
	collectionRepo := mongodb.NewCollectionRepository(db)

	// 5. Setup AI Categorizer
	categorizer := ai.NewCategorizer(cfg.OpenAIAPIKey, cfg.OpenAIModel, time.Duration(cfg.AITimeoutSeconds)*time.Second)
	if !categorizer.IsConfigured() {
		logger.Log.Warn("AI categorizer not configured - every enrichment will use the default category")
	}

	// 6. Setup Token Manager
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiry)*time.Hour)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	resourceUC := usecase.NewResourceUsecase(resourceRepo, categorizer)
	collectionUC := usecase.NewCollectionUsecase(collectionRepo, resourceRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		ResourceUC:   resourceUC,
		CollectionUC: collectionUC,
		Tokens:       tokens,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
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
