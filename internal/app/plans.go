package app

import (
	"context"

	"aicoach/internal/database"
)

func (a *App) plansScreen(ctx context.Context, userID uint) {
	a.listPlans(ctx, userID)

	switch a.readLine("w) new workout plan  n) new nutrition plan  d) delete  enter) back > ") {
	case "w":
		a.generatePlan(ctx, userID, database.PlanTypeWorkout)
	case "n":
		a.generatePlan(ctx, userID, database.PlanTypeNutrition)
	case "d":
		if id, ok := a.readID("plan id: "); ok {
			if err := a.deps.Plans.Delete(ctx, id, userID); err != nil {
				a.fail(err)
			}
		}
		a.listPlans(ctx, userID)
	}
}

func (a *App) listPlans(ctx context.Context, userID uint) {
	plans, err := a.deps.Plans.List(ctx, userID)
	if err != nil {
		a.fail(err)
		return
	}
	if len(plans) == 0 {
		a.printf("no plans yet")
		return
	}
	for _, p := range plans {
		a.printf("#%d [%s] %s", p.ID, p.PlanType, p.CreatedAt.Format("2006-01-02 15:04"))
		a.printf("%s", p.Content)
		a.printf("---")
	}
}

// generatePlan runs the AI call on a worker goroutine and waits for the
// result, keeping the input loop itself out of the network call.
func (a *App) generatePlan(ctx context.Context, userID uint, planType string) {
	generate := a.deps.Coach.GenerateWorkoutPlan
	if planType == database.PlanTypeNutrition {
		generate = a.deps.Coach.GenerateNutritionPlan
	}

	a.printf("generating %s plan...", planType)
	results := make(chan aiResult, 1)
	go func() {
		content, err := generate(ctx, userID)
		results <- aiResult{text: content, err: err}
	}()

	res := <-results
	if res.err != nil {
		a.fail(res.err)
		return
	}

	if _, err := a.deps.Plans.Insert(ctx, userID, planType, res.text); err != nil {
		a.fail(err)
	}
	a.listPlans(ctx, userID)
}

// aiResult carries a completed AI call back to the session loop.
type aiResult struct {
	text string
	err  error
}
