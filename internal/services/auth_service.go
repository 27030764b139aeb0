package services

import (
	"context"
	"strings"

	"aicoach/internal/apperrors"
	"aicoach/internal/database"
	"aicoach/internal/hashing"
	"aicoach/internal/repository"
	"aicoach/internal/validation"
)

// AuthService handles login and registration for the local session.
type AuthService struct {
	users *repository.UserRepository
}

// NewAuthService creates a new auth service.
func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login authenticates by email and password. Malformed input fails with a
// validation error before any storage access. An unknown email or a wrong
// password both return (nil, nil): "no match" is a result, not an error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*database.User, error) {
	if err := validation.Credentials(email, password); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil || user == nil {
		return nil, err
	}
	if hashing.SHA256Hex(password) != user.PasswordHash {
		return nil, nil
	}
	return user, nil
}

// Register creates an account and returns the stored row. The duplicate
// pre-check gives a friendly error; the unique index on email remains the
// authoritative guard if a duplicate slips past it.
func (s *AuthService) Register(ctx context.Context, email, password string) (*database.User, error) {
	if err := validation.Credentials(email, password); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(email)
	existing, err := s.users.FindByEmail(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("email is already registered")
	}

	id, err := s.users.Insert(ctx, trimmed, hashing.SHA256Hex(password))
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}
