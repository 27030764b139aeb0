package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicoach/internal/apperrors"
	"aicoach/internal/database"
	"aicoach/internal/repository"
)

type coachFixture struct {
	coach    *CoachService
	ai       *fakeAI
	profiles *repository.ProfileRepository
	progress *repository.ProgressRepository
	chat     *repository.ChatRepository
	userID   uint
}

func newCoachFixture(t *testing.T, ai *fakeAI) *coachFixture {
	t.Helper()
	db := newTestDB(t)
	f := &coachFixture{
		ai:       ai,
		profiles: repository.NewProfileRepository(db),
		progress: repository.NewProgressRepository(db),
		chat:     repository.NewChatRepository(db),
		userID:   newTestUser(t, db, "coach@example.com"),
	}
	f.coach = NewCoachService(ai, f.profiles, f.progress, f.chat)
	return f
}

func (f *coachFixture) withProfile(t *testing.T) *coachFixture {
	t.Helper()
	age := 25
	goal := "weight_loss"
	require.NoError(t, f.profiles.Upsert(context.Background(), &database.UserProfile{
		UserID: f.userID, Age: &age, Goal: &goal,
	}))
	return f
}

func TestGeneratePlanRequiresProfile(t *testing.T) {
	ai := &fakeAI{reply: "never used"}
	f := newCoachFixture(t, ai)

	_, err := f.coach.GenerateWorkoutPlan(context.Background(), f.userID)
	assert.True(t, apperrors.IsPrecondition(err))

	_, err = f.coach.GenerateNutritionPlan(context.Background(), f.userID)
	assert.True(t, apperrors.IsPrecondition(err))

	// The remote call is never attempted without a profile.
	assert.Zero(t, ai.calls)
}

func TestGenerateWorkoutPlanBuildsPromptFromProfile(t *testing.T) {
	ai := &fakeAI{reply: "3-day plan"}
	f := newCoachFixture(t, ai).withProfile(t)

	content, err := f.coach.GenerateWorkoutPlan(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, "3-day plan", content)

	assert.Contains(t, ai.lastUser, "Task: Build a workout plan.")
	assert.Contains(t, ai.lastUser, "- age: 25")
	assert.Contains(t, ai.lastUser, "- goal: weight_loss")
	// Absent fields show up as explicit unknowns, never vanish.
	assert.Contains(t, ai.lastUser, "- weightKg: unknown")
	assert.Contains(t, ai.lastSystem, "fitness and nutrition coach")
}

func TestChatRequiresProfile(t *testing.T) {
	ai := &fakeAI{reply: "never used"}
	f := newCoachFixture(t, ai)
	ctx := context.Background()

	_, err := f.coach.Chat(ctx, f.userID, "hello")
	assert.True(t, apperrors.IsPrecondition(err))
	assert.Zero(t, ai.calls)

	// Nothing was persisted either.
	history, err := f.chat.List(ctx, f.userID, 100)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestChatPersistsBothSides(t *testing.T) {
	ai := &fakeAI{reply: "drink more water"}
	f := newCoachFixture(t, ai).withProfile(t)
	ctx := context.Background()

	reply, err := f.coach.Chat(ctx, f.userID, "how much water?")
	require.NoError(t, err)
	assert.Equal(t, "drink more water", reply)

	history, err := f.chat.List(ctx, f.userID, 100)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, database.RoleUser, history[0].Role)
	assert.Equal(t, "how much water?", history[0].Message)
	assert.Equal(t, database.RoleAssistant, history[1].Role)
	assert.Equal(t, "drink more water", history[1].Message)

	assert.Contains(t, ai.lastUser, "User message:\nhow much water?")
}

func TestChatKeepsUserMessageWhenAIFails(t *testing.T) {
	ai := &fakeAI{err: apperrors.NewRemoteError(errors.New("boom"), "AI request failed")}
	f := newCoachFixture(t, ai).withProfile(t)
	ctx := context.Background()

	_, err := f.coach.Chat(ctx, f.userID, "are you there?")
	assert.True(t, apperrors.IsRemote(err))

	// The outgoing message stays in history even though no reply arrived.
	history, listErr := f.chat.List(ctx, f.userID, 100)
	require.NoError(t, listErr)
	require.Len(t, history, 1)
	assert.Equal(t, database.RoleUser, history[0].Role)
	assert.Equal(t, "are you there?", history[0].Message)
}

func TestChatBlankReplyGetsPlaceholder(t *testing.T) {
	ai := &fakeAI{reply: "   "}
	f := newCoachFixture(t, ai).withProfile(t)
	ctx := context.Background()

	reply, err := f.coach.Chat(ctx, f.userID, "hello?")
	require.NoError(t, err)
	assert.Equal(t, "(try again)", reply)

	history, err := f.chat.List(ctx, f.userID, 100)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "(try again)", history[1].Message)
}
