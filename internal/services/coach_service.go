package services

import (
	"context"
	"fmt"
	"strings"

	"aicoach/internal/apperrors"
	"aicoach/internal/database"
	"aicoach/internal/interfaces"
	"aicoach/internal/repository"
)

// Sampling parameters are fixed per request kind; only the coach picks them.
const (
	workoutTemperature   float32 = 0.1
	nutritionTemperature float32 = 0.35
	chatTemperature      float32 = 0.4

	planMaxTokens = 900
	chatMaxTokens = 600
)

// Chat context window bounds. The window keeps prompts small while biasing
// toward recent data.
const (
	contextProgressEntries = 5
	contextChatMessages    = 20
	contextMessageMaxLen   = 600

	chatHistoryLimit = 500
)

const planSystemPrompt = `You are an evidence-based fitness and nutrition coach.
You give safe, realistic advice and avoid medical diagnosis.
If the user mentions sharp pain, illness, eating disorders, or medical risk: recommend consulting a professional.
Prefer actionable plans: bullets, numbers, clear steps.
Do not invent personal data; if missing, state assumptions.`

const chatSystemPrompt = `You are an AI fitness coach.
Be practical and safe: don't diagnose and don't promise medical results.
If important data is missing, ask at most 2 clear questions.
For sharp/persistent pain or serious symptoms: recommend medical consultation.
Give structured answers (bullet points) when useful.`

// CoachService assembles prompts from persisted state and delegates to the
// AI client. It never calls the remote endpoint without a stored profile.
type CoachService struct {
	ai       interfaces.AIServiceInterface
	profiles *repository.ProfileRepository
	progress *repository.ProgressRepository
	chat     *repository.ChatRepository
}

// NewCoachService creates a new coach service.
func NewCoachService(
	ai interfaces.AIServiceInterface,
	profiles *repository.ProfileRepository,
	progress *repository.ProgressRepository,
	chat *repository.ChatRepository,
) *CoachService {
	return &CoachService{ai: ai, profiles: profiles, progress: progress, chat: chat}
}

// GenerateWorkoutPlan produces workout plan text for the user's profile.
// The caller persists the result as a Plan.
func (s *CoachService) GenerateWorkoutPlan(ctx context.Context, userID uint) (string, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	user := strings.Join([]string{
		"Task: Build a workout plan.",
		"Constraints:",
		"- Give a 3-day workout plan",
		"- Make as short as possible, using less text but be precise",
		"- Include warmup, main lifts, progression rule, and cardio/steps.",
		"- Keep it realistic and safe for general population. If medical/pain issues: advise specialist.",
		"",
		"User profile:",
		ProfileBlock(profile),
	}, "\n")

	return s.ai.Chat(ctx, planSystemPrompt, user, workoutTemperature, planMaxTokens)
}

// GenerateNutritionPlan produces nutrition plan text for the user's profile.
func (s *CoachService) GenerateNutritionPlan(ctx context.Context, userID uint) (string, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	user := strings.Join([]string{
		"Task: Build a nutrition plan.",
		"Constraints:",
		"- Give daily targets (calories, protein, fats, carbs) and a simple meal template.",
		"- If weight is missing, assume 75kg but mention it's an assumption.",
		"- Keep it practical.",
		"- Add a simple adjustment rule based on weekly weight trend.",
		"",
		"User profile:",
		ProfileBlock(profile),
	}, "\n")

	return s.ai.Chat(ctx, planSystemPrompt, user, nutritionTemperature, planMaxTokens)
}

// Chat sends one coach-chat turn. The outgoing message is persisted before
// the remote call, so the history stays an honest record even when the call
// fails and no reply ever arrives.
func (s *CoachService) Chat(ctx context.Context, userID uint, message string) (string, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	if _, err := s.chat.Insert(ctx, userID, database.RoleUser, message); err != nil {
		return "", err
	}

	progress, err := s.progress.List(ctx, userID)
	if err != nil {
		return "", err
	}
	history, err := s.chat.List(ctx, userID, chatHistoryLimit)
	if err != nil {
		return "", err
	}

	prompt := BuildChatContext(profile, progress, history, message)
	reply, err := s.ai.Chat(ctx, chatSystemPrompt, prompt, chatTemperature, chatMaxTokens)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		reply = "(try again)"
	}

	if _, err := s.chat.Insert(ctx, userID, database.RoleAssistant, reply); err != nil {
		return "", err
	}
	return reply, nil
}

func (s *CoachService) requireProfile(ctx context.Context, userID uint) (*database.UserProfile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NewPreconditionError("profile required: complete your profile first")
	}
	return profile, nil
}

// ProfileBlock renders a profile as prompt text, one field per line.
// Missing fields are rendered as an explicit "unknown", never omitted.
func ProfileBlock(p *database.UserProfile) string {
	return strings.Join([]string{
		"- userId: " + fmt.Sprint(p.UserID),
		"- age: " + intOrUnknown(p.Age),
		"- heightCm: " + intOrUnknown(p.HeightCm),
		"- weightKg: " + floatOrUnknown(p.WeightKg),
		"- goal: " + stringOrUnknown(p.Goal),
		"- activityLevel: " + stringOrUnknown(p.ActivityLevel),
		"- gender: " + stringOrUnknown(p.Gender),
	}, "\n")
}

// BuildChatContext composes the user prompt for one chat turn: the profile,
// the most recent progress entries, the tail of the chat history
// (oldest-first within that window, long messages truncated) and the new
// message. progress is expected newest-first, history oldest-first, as the
// repositories return them.
func BuildChatContext(p *database.UserProfile, progress []database.ProgressEntry, history []database.ChatMessage, userMsg string) string {
	var sb strings.Builder

	sb.WriteString("Profile:\n")
	sb.WriteString(ProfileBlock(p))
	sb.WriteString("\n\n")

	progressTake := min(contextProgressEntries, len(progress))
	fmt.Fprintf(&sb, "Progress (last %d):\n", progressTake)
	for _, e := range progress[:progressTake] {
		fmt.Fprintf(&sb, "- %s: weight=%s, calories=%s, workout_min=%s, notes=%s\n",
			e.EntryDate,
			floatOrUnknown(e.WeightKg),
			intOrUnknown(e.CaloriesConsumed),
			intOrUnknown(e.WorkoutMin),
			stringOrUnknown(e.Notes))
	}
	sb.WriteString("\n")

	chatTake := min(contextChatMessages, len(history))
	window := history[len(history)-chatTake:]
	fmt.Fprintf(&sb, "Chat (last %d messages):\n", chatTake)
	for _, m := range window {
		fmt.Fprintf(&sb, "[%s] %s\n", m.Role, truncate(m.Message, contextMessageMaxLen))
	}
	sb.WriteString("\n")

	sb.WriteString("User message:\n")
	sb.WriteString(userMsg)

	return sb.String()
}

// truncate bounds text to max runes plus an ellipsis marker.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

func intOrUnknown(v *int) string {
	if v == nil {
		return "unknown"
	}
	return fmt.Sprint(*v)
}

func floatOrUnknown(v *float64) string {
	if v == nil {
		return "unknown"
	}
	return fmt.Sprint(*v)
}

func stringOrUnknown(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "unknown"
	}
	return *v
}
