package repository

import (
	"context"

	"gorm.io/gorm"

	"aicoach/internal/apperrors"
	"aicoach/internal/database"
)

// ProgressRepository handles progress log entries.
type ProgressRepository struct {
	db *gorm.DB
}

// NewProgressRepository returns a new progress repository.
func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// List returns a user's progress entries, most recent date first, ties
// broken by newest id.
func (r *ProgressRepository) List(ctx context.Context, userID uint) ([]database.ProgressEntry, error) {
	var entries []database.ProgressEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.NewStorageError(err, "list progress")
	}
	return entries, nil
}

// Insert stores a progress entry and returns the generated id.
func (r *ProgressRepository) Insert(ctx context.Context, entry *database.ProgressEntry) (uint, error) {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return 0, apperrors.NewStorageError(err, "insert progress")
	}
	return entry.ID, nil
}

// Delete removes an entry only when it belongs to userID.
func (r *ProgressRepository) Delete(ctx context.Context, id, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&database.ProgressEntry{}).Error
	if err != nil {
		return apperrors.NewStorageError(err, "delete progress")
	}
	return nil
}
