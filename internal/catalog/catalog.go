// Package catalog holds the static exercise catalog. It is loaded once at
// startup and never mutated afterwards.
package catalog

import (
	"errors"
	"fmt"

	"fitguide/fitness-app/internal/domain"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

var ErrInvalidCatalog = errors.New("invalid exercise catalog")

// Catalog is an immutable, ordered set of exercises.
type Catalog struct {
	exercises []domain.Exercise
	byID      map[string]int
}

// New validates the exercises and builds a catalog from them.
func New(exercises []domain.Exercise) (*Catalog, error) {
	if err := Validate(exercises); err != nil {
		return nil, err
	}
	c := &Catalog{
		exercises: make([]domain.Exercise, len(exercises)),
		byID:      make(map[string]int, len(exercises)),
	}
	copy(c.exercises, exercises)
	for i, ex := range c.exercises {
		c.byID[ex.ID] = i
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultExercises)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err)) // programming error
	}
	return c
}

// LoadFile reads a catalog from a yaml/json/toml file with an "exercises" list.
func LoadFile(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var file struct {
		Exercises []domain.Exercise `mapstructure:"exercises"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return New(file.Exercises)
}

// Exercises returns the catalog in its defined order. Callers must not modify it.
func (c *Catalog) Exercises() []domain.Exercise {
	return c.exercises
}

// Get looks an exercise up by id.
func (c *Catalog) Get(id string) (*domain.Exercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	ex := c.exercises[i]
	return &ex, true
}

func (c *Catalog) Len() int {
	return len(c.exercises)
}

// Equipment returns the gym equipment reference list.
func Equipment() []domain.Equipment {
	out := make([]domain.Equipment, len(gymEquipment))
	copy(out, gymEquipment)
	return out
}

// Validate checks every exercise and the replacement links between them,
// reporting all problems at once.
func Validate(exercises []domain.Exercise) error {
	var errs error
	fail := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidCatalog}, args...)...))
	}

	if len(exercises) == 0 {
		fail("catalog is empty")
		return errs
	}

	index := make(map[string]*domain.Exercise, len(exercises))
	for i := range exercises {
		ex := &exercises[i]
		if ex.ID == "" {
			fail("exercise #%d has no id", i)
			continue
		}
		if _, dup := index[ex.ID]; dup {
			fail("duplicate id %q", ex.ID)
			continue
		}
		index[ex.ID] = ex

		if ex.Name == "" {
			fail("%s: name is required", ex.ID)
		}
		if len(ex.Muscles) == 0 {
			fail("%s: at least one muscle group is required", ex.ID)
		}
		if ex.Sets <= 0 {
			fail("%s: sets must be positive", ex.ID)
		}
		if !ex.Category.Valid() {
			fail("%s: unknown category %q", ex.ID, ex.Category)
		}
		if !ex.Difficulty.Valid() {
			fail("%s: unknown difficulty %q", ex.ID, ex.Difficulty)
		}
		if len(ex.Locations) == 0 {
			fail("%s: at least one location is required", ex.ID)
		}
		for _, l := range ex.Locations {
			if !l.Valid() {
				fail("%s: unknown location %q", ex.ID, l)
			}
		}
	}

	replaced := map[string]string{}
	for i := range exercises {
		ex := &exercises[i]
		if ex.ID == "" {
			continue
		}
		if !ex.IsReplacement {
			if ex.ReplacesID != "" {
				fail("%s: replacesId set but not marked as replacement", ex.ID)
			}
			continue
		}
		if ex.ReplacesID == "" {
			fail("%s: replacement without replacesId", ex.ID)
			continue
		}
		if ex.ReplacesID == ex.ID {
			fail("%s: exercise cannot replace itself", ex.ID)
			continue
		}
		original, ok := index[ex.ReplacesID]
		if !ok {
			fail("%s: replaces unknown exercise %q", ex.ID, ex.ReplacesID)
			continue
		}
		if !original.NeedsEquipment() {
			fail("%s: replaces %q which requires no equipment", ex.ID, ex.ReplacesID)
		}
		if original.IsReplacement {
			fail("%s: replaces %q which is itself a replacement", ex.ID, ex.ReplacesID)
		}
		if prev, dup := replaced[ex.ReplacesID]; dup {
			fail("%s: %q already replaced by %q", ex.ID, ex.ReplacesID, prev)
		} else {
			replaced[ex.ReplacesID] = ex.ID
		}
	}
	return errs
}
