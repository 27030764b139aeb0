package repository

import (
	"context"

	"gorm.io/gorm"

	"aicoach/internal/apperrors"
	"aicoach/internal/database"
)

// PlanRepository handles generated plans.
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository returns a new plan repository.
func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// List returns a user's plans, newest first. No plans is an empty slice.
func (r *PlanRepository) List(ctx context.Context, userID uint) ([]database.Plan, error) {
	var plans []database.Plan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&plans).Error; err != nil {
		return nil, apperrors.NewStorageError(err, "list plans")
	}
	return plans, nil
}

// Insert stores a plan and returns the generated id.
func (r *PlanRepository) Insert(ctx context.Context, userID uint, planType, content string) (uint, error) {
	plan := database.Plan{UserID: userID, PlanType: planType, Content: content}
	if err := r.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return 0, apperrors.NewStorageError(err, "insert plan")
	}
	return plan.ID, nil
}

// Delete removes a plan only when it belongs to userID. A missing row or a
// foreign owner deletes nothing and reports nothing.
func (r *PlanRepository) Delete(ctx context.Context, id, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&database.Plan{}).Error
	if err != nil {
		return apperrors.NewStorageError(err, "delete plan")
	}
	return nil
}
