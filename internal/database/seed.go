package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"aicoach/internal/hashing"
	"aicoach/internal/logger"
)

// Demo account credentials inserted into an empty store.
const (
	SeedEmail    = "test@example.com"
	SeedPassword = "test123"
)

// Seed populates an empty store with one demo user plus a profile, a
// progress entry, a plan and a chat message, so a fresh install has
// something to look at. It checks for existing users first and is safe to
// run on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	user := &User{
		Email:        SeedEmail,
		PasswordHash: hashing.SHA256Hex(SeedPassword),
	}
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	age := 25
	height := 178
	weight := 75.0
	goal := "weight_loss"
	activity := "moderate"
	gender := "male"
	profile := &UserProfile{
		UserID:        user.ID,
		Age:           &age,
		HeightCm:      &height,
		WeightKg:      &weight,
		Goal:          &goal,
		ActivityLevel: &activity,
		Gender:        &gender,
	}
	if err := db.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to seed profile: %w", err)
	}

	calories := 2200
	workoutMin := 45
	notes := "First workout logged"
	entry := &ProgressEntry{
		UserID:           user.ID,
		EntryDate:        time.Now().Format(DateLayout),
		WeightKg:         &weight,
		CaloriesConsumed: &calories,
		WorkoutMin:       &workoutMin,
		Notes:            &notes,
	}
	if err := db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to seed progress: %w", err)
	}

	plan := &Plan{
		UserID:   user.ID,
		PlanType: PlanTypeWorkout,
		Content:  "Push Day: Bench, OHP, Triceps dips, Incline Press",
	}
	if err := db.Create(plan).Error; err != nil {
		return fmt.Errorf("failed to seed plan: %w", err)
	}

	message := &ChatMessage{
		UserID:  user.ID,
		Role:    RoleAssistant,
		Message: "Hi! I am your AI coach",
	}
	if err := db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to seed chat message: %w", err)
	}

	logger.Info("Seeded demo account", "email", SeedEmail)
	return nil
}
