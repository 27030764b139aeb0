package repository

import (
	"context"

	"gorm.io/gorm"

	"aicoach/internal/apperrors"
	"aicoach/internal/database"
)

// ChatRepository handles the append-only chat history.
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository returns a new chat repository.
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// List returns a user's newest messages, at most limit of them, ordered
// oldest first. With more than limit messages stored the oldest are the
// ones dropped.
func (r *ChatRepository) List(ctx context.Context, userID uint, limit int) ([]database.ChatMessage, error) {
	var messages []database.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, apperrors.NewStorageError(err, "list chat")
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// Insert appends a message and returns the generated id.
func (r *ChatRepository) Insert(ctx context.Context, userID uint, role, message string) (uint, error) {
	msg := database.ChatMessage{UserID: userID, Role: role, Message: message}
	if err := r.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return 0, apperrors.NewStorageError(err, "insert chat message")
	}
	return msg.ID, nil
}

// Clear deletes a user's entire chat history.
func (r *ChatRepository) Clear(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&database.ChatMessage{}).Error
	if err != nil {
		return apperrors.NewStorageError(err, "clear chat")
	}
	return nil
}
