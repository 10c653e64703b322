package ai

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/metrics"

	log "github.com/sirupsen/logrus"
)

// Content kinds, used as the fallback metric label.
const (
	KindInsight  = "insight"
	KindRoutine  = "routine"
	KindMealPlan = "meal_plan"
	KindChat     = "chat"
	KindScan     = "scan"
)

const coachPersona = "You are FitGuide Assistant, a friendly fitness coach for beginners. " +
	"Give simple, safe and effective advice on gym machines, home workouts and basic nutrition. " +
	"Always encourage proper form."

var ErrInvalidChat = errors.New("chat history must end with a user message")

// Result is generated text; Fallback is set when static content was served instead.
type Result struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

// Coach produces the generated coaching content. A nil generator serves
// static content for every request.
type Coach struct {
	gen            Generator
	metricsManager *metrics.Manager
	pick           func(n int) int
}

func NewCoach(gen Generator, metricsManager *metrics.Manager) *Coach {
	return &Coach{
		gen:            gen,
		metricsManager: metricsManager,
		pick:           rand.Intn,
	}
}

func (c *Coach) Insight(ctx context.Context, profile *domain.UserProfile) Result {
	bmi := domain.AnalyzeBMI(profile)
	prompt := Prompt{
		Text: fmt.Sprintf(
			"Generate a short, encouraging fitness insight for a %s aiming for %s. "+
				"BMI is %.1f (%s). Workout location: %s. Limit to 2-3 sentences.",
			describe(profile), goalOf(profile), bmi.Score, bmi.Category, profile.Location,
		),
		Temperature: 0.7,
	}
	return c.generate(ctx, KindInsight, prompt, fallbackInsight(bmi.Category, c.pick))
}

func (c *Coach) Routine(ctx context.Context, profile *domain.UserProfile) Result {
	equipment := "Location: Home (no heavy equipment)"
	if profile.Location == domain.LocationGym {
		equipment = "Available equipment: " + strings.Join(profile.AvailableEquipment, ", ")
	}
	prompt := Prompt{
		Text: fmt.Sprintf(
			"As a personal trainer, write a daily workout routine for a beginner.\n"+
				"Profile: %s, goal: %s, BMI status: %s.\n%s.\n\n"+
				"Requirements:\n"+
				"1. 5-6 exercises.\n"+
				"2. For each give name, sets, reps and a coach tip on form.\n"+
				"3. Format it clearly with emojis.\n"+
				"4. Only use the listed equipment; bodyweight only at home.\n"+
				"5. End with a one sentence motivation.",
			describe(profile), goalOf(profile), profile.BMICategory(), equipment,
		),
		Temperature: 0.8,
	}
	return c.generate(ctx, KindRoutine, prompt, fallbackRoutine(profile.Location))
}

func (c *Coach) MealPlan(ctx context.Context, profile *domain.UserProfile) Result {
	targets := domain.DailyTargets(profile)
	prompt := Prompt{
		Text: fmt.Sprintf(
			"As a nutritionist, write a one day sample meal plan for a %s who wants %s. "+
				"Height: %.0fcm, weight: %.0fkg. Daily targets: %d kcal, %dg protein, %dg carbs, %dg fats. "+
				"Use headers for Breakfast, Lunch, Snack and Dinner. Keep it concise and beginner friendly.",
			describe(profile), goalOf(profile), profile.HeightCm, profile.WeightKg,
			targets.Calories, targets.Protein, targets.Carbs, targets.Fats,
		),
		Temperature: 0.7,
	}
	return c.generate(ctx, KindMealPlan, prompt, fallbackMealPlan)
}

// Chat answers the last user turn of history.
func (c *Coach) Chat(ctx context.Context, history []Turn) (Result, error) {
	if len(history) == 0 || history[len(history)-1].Role != RoleUser ||
		strings.TrimSpace(history[len(history)-1].Message) == "" {
		return Result{}, ErrInvalidChat
	}

	if c.gen == nil {
		c.countFallback(KindChat)
		return Result{Text: chatUnavailable, Fallback: true}, nil
	}

	prompt := Prompt{
		System:  coachPersona,
		History: history,
	}
	return c.generate(ctx, KindChat, prompt, chatFailed), nil
}

// AnalyzeEquipment explains the gym machine shown in image.
func (c *Coach) AnalyzeEquipment(ctx context.Context, image Image) Result {
	prompt := Prompt{
		System: coachPersona,
		Text: "Identify the gym equipment in this photo. Explain which muscles it trains, " +
			"how to set it up and use it with good form, and one common mistake to avoid. " +
			"Keep it short and beginner friendly.",
		Image:       &image,
		Temperature: 0.4,
	}
	return c.generate(ctx, KindScan, prompt, fallbackScan)
}

func (c *Coach) generate(ctx context.Context, kind string, prompt Prompt, fallback string) Result {
	if c.gen == nil {
		c.countFallback(kind)
		return Result{Text: fallback, Fallback: true}
	}

	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		log.Warnf("generate %s failed, serving fallback: %s", kind, err)
		c.countFallback(kind)
		return Result{Text: fallback, Fallback: true}
	}
	return Result{Text: text}
}

func (c *Coach) countFallback(kind string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterAIFallbacks.WithLabelValues(kind).Inc()
	}
}

func describe(p *domain.UserProfile) string {
	var b strings.Builder
	if p.Age > 0 {
		fmt.Fprintf(&b, "%d year old ", p.Age)
	}
	if p.Gender != "" {
		b.WriteString(strings.ToLower(string(p.Gender)) + " ")
	}
	b.WriteString("beginner")
	return b.String()
}

func goalOf(p *domain.UserProfile) string {
	if p.Goal == "" {
		return string(domain.GoalStayFit)
	}
	return string(p.Goal)
}
