package domain

// BMICategory is the weight-for-height classification used to bias exercise ordering.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	// BMIObese is declared for clients that display it but CategorizeBMI never returns it.
	BMIObese BMICategory = "Obese"
)

const (
	bmiUnderweightBelow = 18.5
	bmiNormalBelow      = 25
)

// IdealBMIRange is the range shown to users next to their score.
var IdealBMIRange = BMIRange{Min: 18.5, Max: 24.9}

type BMIRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BMIInfo is the analysed BMI of a profile.
type BMIInfo struct {
	Score      float64     `json:"score"`
	Category   BMICategory `json:"category"`
	IdealRange BMIRange    `json:"idealRange"`
	Message    string      `json:"message"`
}

// BMI returns weight_kg / height_m².
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

// CategorizeBMI applies the two-threshold split: <18.5 Underweight, <25 Normal, else Overweight.
func CategorizeBMI(score float64) BMICategory {
	switch {
	case score < bmiUnderweightBelow:
		return BMIUnderweight
	case score < bmiNormalBelow:
		return BMINormal
	default:
		return BMIOverweight
	}
}

// BMICategory derives the BMI category of the profile.
func (p *UserProfile) BMICategory() BMICategory {
	return CategorizeBMI(BMI(p.HeightCm, p.WeightKg))
}

// AnalyzeBMI builds the BMI summary for a profile.
func AnalyzeBMI(p *UserProfile) BMIInfo {
	score := BMI(p.HeightCm, p.WeightKg)
	return BMIInfo{
		Score:      score,
		Category:   CategorizeBMI(score),
		IdealRange: IdealBMIRange,
		Message:    "Based on your height and weight, this workout plan is recommended for you.",
	}
}
