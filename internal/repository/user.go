// Package repository implements the data access layer. Lookups that match
// nothing return (nil, nil); deletes scoped to a foreign owner are silent
// no-ops. Only real storage faults come back as errors.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aicoach/internal/apperrors"
	"aicoach/internal/database"
)

// UserRepository handles rows in the users table.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new user repository over the shared handle.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks a user up by exact email. Email is case-sensitive in
// storage; callers trim input before passing it here.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*database.User, error) {
	var user database.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError(err, "find user by email")
	}
	return &user, nil
}

// FindByID looks a user up by id.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*database.User, error) {
	var user database.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError(err, "find user by id")
	}
	return &user, nil
}

// Insert creates a user and returns the generated id. A duplicate email
// trips the unique index and surfaces as a storage error.
func (r *UserRepository) Insert(ctx context.Context, email, passwordHash string) (uint, error) {
	user := database.User{Email: email, PasswordHash: passwordHash}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return 0, apperrors.NewStorageError(err, "insert user")
	}
	return user.ID, nil
}

// Delete removes a user. Foreign keys cascade the delete to the profile,
// plans, progress and chat history.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&database.User{}, id).Error; err != nil {
		return apperrors.NewStorageError(err, "delete user")
	}
	return nil
}
