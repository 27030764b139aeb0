package interfaces

import (
	"context"

	"aicoach/internal/database"
)

// AuthServiceInterface defines the contract for session authentication
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*database.User, error)
	Register(ctx context.Context, email, password string) (*database.User, error)
}

// CoachServiceInterface defines the contract for AI coaching operations
type CoachServiceInterface interface {
	GenerateWorkoutPlan(ctx context.Context, userID uint) (string, error)
	GenerateNutritionPlan(ctx context.Context, userID uint) (string, error)
	Chat(ctx context.Context, userID uint, message string) (string, error)
}

// AIServiceInterface defines the contract for the remote completion client
type AIServiceInterface interface {
	Chat(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error)
}
