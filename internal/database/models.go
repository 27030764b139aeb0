package database

import "time"

// Plan types stored in plans.plan_type.
const (
	PlanTypeWorkout   = "WORKOUT"
	PlanTypeNutrition = "NUTRITION"
)

// Chat roles stored in chat_history.role.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DateLayout is the storage format for progress entry dates. ISO dates sort
// correctly as text, which the progress listing order depends on.
const DateLayout = "2006-01-02"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

// UserProfile is 1:1 with User, keyed by user id. Every attribute is
// optional; a nil pointer is stored as NULL.
type UserProfile struct {
	UserID        uint `gorm:"primaryKey"`
	User          User `gorm:"constraint:OnDelete:CASCADE"`
	Age           *int
	HeightCm      *int
	WeightKg      *float64
	Goal          *string
	ActivityLevel *string
	Gender        *string
	UpdatedAt     time.Time
}

type Plan struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index;not null"`
	User      User `gorm:"constraint:OnDelete:CASCADE"`
	PlanType  string
	Content   string
	CreatedAt time.Time
}

type ProgressEntry struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"index;not null"`
	User             User   `gorm:"constraint:OnDelete:CASCADE"`
	EntryDate        string `gorm:"not null"`
	WeightKg         *float64
	CaloriesConsumed *int
	WorkoutMin       *int
	Notes            *string
}

func (ProgressEntry) TableName() string {
	return "progress"
}

type ChatMessage struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index;not null"`
	User      User `gorm:"constraint:OnDelete:CASCADE"`
	Role      string
	Message   string
	Timestamp time.Time `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_history"
}
