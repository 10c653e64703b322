package ai

import "fitguide/fitness-app/internal/domain"

var generalInsights = []string{
	"Great job! Keep staying active and focused on your goals. Consistency is key!",
	"Remember, progress takes time. Focus on form over intensity!",
	"You're making great progress. Stay hydrated and get enough rest!",
	"Every workout counts! Keep pushing yourself within your limits.",
	"Listen to your body and celebrate small wins along the way!",
}

const (
	underweightInsight = "Focus on strength training and eating enough to build muscle mass!"
	overweightInsight  = "Combine cardio with strength training for optimal weight loss results!"

	fallbackMealPlan = "Focus on whole foods, lean proteins, and plenty of greens. " +
		"Try to eat every 3-4 hours to keep your energy stable!"

	chatUnavailable = "I'm sorry, I can't chat right now as the AI service is not configured. Please check back later!"
	chatFailed      = "I'm sorry, I'm having trouble connecting right now. Let's focus on your workout plan!"

	fallbackScan = "I couldn't analyze this photo right now. Look for the instruction placard on the machine, " +
		"start with the lightest weight, and ask gym staff to show you the setup before your first set."
)

const homeRoutine = `🏠 **Home Workout Routine**

1. **Push-ups** - 3 sets of 10-15 reps
   Coach Tip: Keep your body in a straight line, don't let your hips sag!

2. **Bodyweight Squats** - 3 sets of 15 reps
   Coach Tip: Go as low as comfortable, keep your weight on your heels.

3. **Plank Hold** - 3 sets of 30-60 seconds
   Coach Tip: Engage your core, don't let your hips drop!

4. **Mountain Climbers** - 3 sets of 20 reps
   Coach Tip: Keep your core tight and drive your knees to your chest.

5. **Burpees** - 3 sets of 8-10 reps
   Coach Tip: Focus on proper form over speed. You've got this! 💪

**Motivation:** Every rep brings you closer to your goals. Stay consistent!`

const gymRoutine = `💪 **Gym Workout Routine**

1. **Lat Pulldowns** - 3 sets of 10-12 reps
   Coach Tip: Focus on squeezing your lats, don't just use your arms.

2. **Seated Rows** - 3 sets of 12 reps
   Coach Tip: Keep your chest up and pull to your waistline.

3. **Bench Press** - 3 sets of 8-10 reps
   Coach Tip: Keep your feet planted and control the bar down.

4. **Leg Press** - 3 sets of 12-15 reps
   Coach Tip: Don't go too deep, keep your glutes on the seat.

5. **Shoulder Press** - 3 sets of 10 reps
   Coach Tip: Start with lighter weight to master the form.

**Motivation:** Great choice using the gym! Make every rep count! 🏋️`

func fallbackInsight(category domain.BMICategory, pick func(n int) int) string {
	switch category {
	case domain.BMIUnderweight:
		return underweightInsight
	case domain.BMIOverweight:
		return overweightInsight
	}
	return generalInsights[pick(len(generalInsights))]
}

func fallbackRoutine(location domain.Location) string {
	if location == domain.LocationHome {
		return homeRoutine
	}
	return gymRoutine
}
