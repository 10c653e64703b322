package domain

import "math"

// NutritionTargets are the daily macro goals derived from a profile.
type NutritionTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

const (
	moderateActivity    = 1.55
	weightLossDeficit   = 500
	muscleGainSurplus   = 300
	proteinGramsPerKg   = 1.6
	carbsCalorieShare   = 0.45
	fatsCalorieShare    = 0.25
	caloriesPerGramCarb = 4
	caloriesPerGramFat  = 9
)

// DailyTargets estimates calorie and macro targets with the Mifflin-St Jeor
// BMR at moderate activity, adjusted for the profile goal.
func DailyTargets(p *UserProfile) NutritionTargets {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	calories := bmr * moderateActivity
	switch p.Goal {
	case GoalWeightLoss:
		calories -= weightLossDeficit
	case GoalMuscleGain:
		calories += muscleGainSurplus
	}

	return NutritionTargets{
		Calories: round(calories),
		Protein:  round(p.WeightKg * proteinGramsPerKg),
		Carbs:    round(calories * carbsCalorieShare / caloriesPerGramCarb),
		Fats:     round(calories * fatsCalorieShare / caloriesPerGramFat),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
