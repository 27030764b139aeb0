package app

import (
	"context"
	"strconv"
	"time"

	"aicoach/internal/database"
)

func (a *App) progressScreen(ctx context.Context, userID uint) {
	a.listProgress(ctx, userID)

	switch a.readLine("a) add  d) delete  enter) back > ") {
	case "a":
		a.addProgress(ctx, userID)
	case "d":
		if id, ok := a.readID("entry id: "); ok {
			if err := a.deps.Progress.Delete(ctx, id, userID); err != nil {
				a.fail(err)
			}
		}
		a.listProgress(ctx, userID)
	}
}

func (a *App) listProgress(ctx context.Context, userID uint) {
	entries, err := a.deps.Progress.List(ctx, userID)
	if err != nil {
		a.fail(err)
		return
	}
	if len(entries) == 0 {
		a.printf("no progress entries")
		return
	}
	for _, e := range entries {
		a.printf("#%d %s weight=%s calories=%s workout_min=%s notes=%s",
			e.ID, e.EntryDate,
			dashFloat(e.WeightKg), dashInt(e.CaloriesConsumed),
			dashInt(e.WorkoutMin), dashString(e.Notes))
	}
}

func (a *App) addProgress(ctx context.Context, userID uint) {
	date := a.readLine("date YYYY-MM-DD (blank for today): ")
	if date == "" {
		date = time.Now().Format(database.DateLayout)
	} else if _, err := time.Parse(database.DateLayout, date); err != nil {
		a.printf("bad date, using today")
		date = time.Now().Format(database.DateLayout)
	}

	entry := &database.ProgressEntry{
		UserID:           userID,
		EntryDate:        date,
		WeightKg:         a.readOptionalFloat("weight kg (blank to skip): "),
		CaloriesConsumed: a.readOptionalInt("calories (blank to skip): "),
		WorkoutMin:       a.readOptionalInt("workout minutes (blank to skip): "),
		Notes:            a.readOptionalString("notes (blank to skip): "),
	}

	if _, err := a.deps.Progress.Insert(ctx, entry); err != nil {
		a.fail(err)
	} else if entry.WeightKg != nil {
		// A new weight also refreshes the profile weight.
		if err := a.deps.Profiles.UpdateWeight(ctx, userID, *entry.WeightKg); err != nil {
			a.fail(err)
		}
	}
	a.listProgress(ctx, userID)
}

func dashInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func dashFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func dashString(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}
