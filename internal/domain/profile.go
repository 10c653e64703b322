package domain

import (
	"sort"
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type FitnessGoal string

const (
	GoalWeightLoss FitnessGoal = "Weight Loss"
	GoalMuscleGain FitnessGoal = "Muscle Gain"
	GoalStayFit    FitnessGoal = "Stay Fit"
)

// Accepted ranges for onboarding / profile edits.
const (
	MinHeightCm = 100
	MaxHeightCm = 250
	MinWeightKg = 30
	MaxWeightKg = 300
	MinAge      = 13
	MaxAge      = 100
)

// UserProfile holds the body metrics and training preferences of a user.
// Stored in the user_profiles relation keyed by user ID.
type UserProfile struct {
	ID                 string      `bson:"_id" json:"id"`
	Email              string      `bson:"email,omitempty" json:"email,omitempty"`
	FirstName          string      `bson:"firstName" json:"firstName"`
	LastName           string      `bson:"lastName" json:"lastName"`
	Age                int         `bson:"age,omitempty" json:"age,omitempty"`
	Gender             Gender      `bson:"gender,omitempty" json:"gender,omitempty"`
	Goal               FitnessGoal `bson:"goal,omitempty" json:"goal,omitempty"`
	HeightCm           float64     `bson:"height" json:"height"`
	WeightKg           float64     `bson:"weight" json:"weight"`
	Location           Location    `bson:"location" json:"location"`
	AvailableEquipment []string    `bson:"availableEquipment,omitempty" json:"availableEquipment"`
	CreatedAt          time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// HasEquipment reports whether the profile lists the given equipment tag.
// Equipment is ignored entirely for home users.
func (p *UserProfile) HasEquipment(tag string) bool {
	if p.Location == LocationHome {
		return false
	}
	for _, e := range p.AvailableEquipment {
		if e == tag {
			return true
		}
	}
	return false
}

// ValidationError carries field-level messages for a rejected profile.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

// Validate checks the profile against the onboarding rules and returns a
// *ValidationError listing every offending field, or nil.
func (p *UserProfile) Validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(p.FirstName) == "" {
		fields["firstName"] = "First name is required"
	}
	if strings.TrimSpace(p.LastName) == "" {
		fields["lastName"] = "Last name is required"
	}
	if p.Age != 0 && (p.Age < MinAge || p.Age > MaxAge) {
		fields["age"] = "Age must be between 13 and 100"
	}
	if p.HeightCm < MinHeightCm || p.HeightCm > MaxHeightCm {
		fields["height"] = "Height must be between 100cm and 250cm"
	}
	if p.WeightKg < MinWeightKg || p.WeightKg > MaxWeightKg {
		fields["weight"] = "Weight must be between 30kg and 300kg"
	}
	if !p.Location.Valid() {
		fields["location"] = "Location must be Gym or Home"
	}
	switch p.Gender {
	case "", GenderMale, GenderFemale, GenderOther:
	default:
		fields["gender"] = "Gender must be Male, Female or Other"
	}
	switch p.Goal {
	case "", GoalWeightLoss, GoalMuscleGain, GoalStayFit:
	default:
		fields["goal"] = "Goal must be Weight Loss, Muscle Gain or Stay Fit"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
