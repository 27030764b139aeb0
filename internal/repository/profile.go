package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aicoach/internal/apperrors"
	"aicoach/internal/database"
)

// ProfileRepository handles the 1:1 user_profiles rows.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new profile repository.
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get returns the profile for a user, or (nil, nil) when none exists yet.
func (r *ProfileRepository) Get(ctx context.Context, userID uint) (*database.UserProfile, error) {
	var profile database.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError(err, "get profile")
	}
	return &profile, nil
}

// Upsert writes the whole profile row, inserting or replacing on the
// user_id key. Last write wins; updated_at advances on every call.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *database.UserProfile) error {
	profile.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"age", "height_cm", "weight_kg", "goal", "activity_level", "gender", "updated_at",
		}),
	}).Create(profile).Error
	if err != nil {
		return apperrors.NewStorageError(err, "upsert profile")
	}
	return nil
}

// UpdateWeight updates only the weight column, used when a progress entry
// supplies a fresher weight. A user without a profile row is a no-op.
func (r *ProfileRepository) UpdateWeight(ctx context.Context, userID uint, weightKg float64) error {
	err := r.db.WithContext(ctx).
		Model(&database.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"weight_kg":  weightKg,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return apperrors.NewStorageError(err, "update profile weight")
	}
	return nil
}
