// internal/domain/exercise.go
package domain

import "strings"

// Category groups exercises for filtering and BMI-driven ordering.
type Category string

const (
	CategoryStrength Category = "Strength"
	CategoryCardio   Category = "Cardio"
	CategoryCore     Category = "Core"

	// CategoryAll is only meaningful as a filter value.
	CategoryAll Category = "All"
)

// Valid reports whether c names a real exercise category (All is a filter, not a category).
func (c Category) Valid() bool {
	switch c {
	case CategoryStrength, CategoryCardio, CategoryCore:
		return true
	}
	return false
}

// Location is where a user trains.
type Location string

const (
	LocationGym  Location = "Gym"
	LocationHome Location = "Home"
)

// Valid reports whether l is Gym or Home.
func (l Location) Valid() bool {
	return l == LocationGym || l == LocationHome
}

// Difficulty of an exercise.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Exercise represents a single exercise definition in the catalog.
// Catalog entries are immutable once loaded.
type Exercise struct {
	ID          string     `json:"id" mapstructure:"id"`
	Name        string     `json:"name" mapstructure:"name"`
	Muscles     []string   `json:"muscles" mapstructure:"muscles"`
	Sets        int        `json:"sets" mapstructure:"sets"`
	Reps        string     `json:"reps" mapstructure:"reps"` // free text, e.g. "10–12" or "60s"
	Instruction string     `json:"instruction,omitempty" mapstructure:"instruction"`
	Image       string     `json:"image,omitempty" mapstructure:"image"`
	Category    Category   `json:"category" mapstructure:"category"`
	Locations   []Location `json:"location" mapstructure:"location"`
	Difficulty  Difficulty `json:"difficulty" mapstructure:"difficulty"`

	// EquipmentRequired names the specific machine the exercise needs, if any.
	EquipmentRequired string `json:"equipmentRequired,omitempty" mapstructure:"equipment_required"`
	// IsReplacement marks a dumbbell/bodyweight alternative for a machine exercise.
	IsReplacement bool `json:"isReplacement,omitempty" mapstructure:"is_replacement"`
	// ReplacesID is the ID of the machine exercise this one stands in for.
	ReplacesID string `json:"replacesId,omitempty" mapstructure:"replaces_id"`
}

// AvailableAt reports whether the exercise can be done at loc (case-insensitive).
func (e *Exercise) AvailableAt(loc Location) bool {
	for _, l := range e.Locations {
		if strings.EqualFold(string(l), string(loc)) {
			return true
		}
	}
	return false
}

// NeedsEquipment reports whether the exercise requires a specific machine.
func (e *Exercise) NeedsEquipment() bool {
	return e.EquipmentRequired != ""
}

// Equipment is an entry of the gym equipment reference list shown during onboarding.
type Equipment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
