package app

import (
	"context"

	"aicoach/internal/database"
	"aicoach/internal/services"
)

func (a *App) profileScreen(ctx context.Context, userID uint) {
	profile, err := a.deps.Profiles.Get(ctx, userID)
	if err != nil {
		a.fail(err)
		return
	}
	if profile == nil {
		a.printf("no profile yet")
	} else {
		a.printf("%s", services.ProfileBlock(profile))
	}

	if a.readLine("edit profile? (y/n) ") != "y" {
		return
	}

	updated := &database.UserProfile{
		UserID:        userID,
		Age:           a.readOptionalInt("age (blank to skip): "),
		HeightCm:      a.readOptionalInt("height cm (blank to skip): "),
		WeightKg:      a.readOptionalFloat("weight kg (blank to skip): "),
		Goal:          a.readOptionalString("goal (blank to skip): "),
		ActivityLevel: a.readOptionalString("activity level (blank to skip): "),
		Gender:        a.readOptionalString("gender (blank to skip): "),
	}

	if err := a.deps.Profiles.Upsert(ctx, updated); err != nil {
		a.fail(err)
	}

	// Re-read regardless of outcome so the screen shows stored state.
	if profile, err = a.deps.Profiles.Get(ctx, userID); err == nil && profile != nil {
		a.printf("saved:")
		a.printf("%s", services.ProfileBlock(profile))
	}
}
