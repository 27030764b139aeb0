package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"aicoach/internal/app"
	"aicoach/internal/apperrors"
	"aicoach/internal/config"
	"aicoach/internal/database"
	"aicoach/internal/logger"
	"aicoach/internal/repository"
	"aicoach/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	db, err := database.NewSQLiteDB(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		logger.Fatalf("Failed to seed database: %v", err)
	}

	// The AI client is a hard startup dependency: a missing token stops the
	// process here, not in the middle of a session.
	aiService, err := services.NewAIService(cfg.AI)
	if err != nil {
		logger.Fatalf("Failed to create AI client: %v", err)
	}

	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)
	progress := repository.NewProgressRepository(db)
	plans := repository.NewPlanRepository(db)
	chat := repository.NewChatRepository(db)

	authService := services.NewAuthService(users)
	coachService := services.NewCoachService(aiService, profiles, progress, chat)
	logger.Info("Services initialized")

	application := app.New(app.Dependencies{
		Auth:     authService,
		Coach:    coachService,
		Profiles: profiles,
		Progress: progress,
		Plans:    plans,
		Chat:     chat,
		Errors:   apperrors.NewHandler(logger.GetLogger()),
	}, os.Stdin, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil && err != context.Canceled {
		logger.Fatalf("Session ended with error: %v", err)
	}
}
