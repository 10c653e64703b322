package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fitguide/fitness-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func strength(id string) domain.Exercise {
	return domain.Exercise{
		ID:         id,
		Name:       id,
		Muscles:    []string{"Legs"},
		Sets:       3,
		Reps:       "10",
		Category:   domain.CategoryStrength,
		Locations:  []domain.Location{domain.LocationGym},
		Difficulty: domain.DifficultyBeginner,
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Equal(t, len(defaultExercises), c.Len())

	ex, ok := c.Get("back_1")
	require.True(t, ok)
	assert.Equal(t, "Lat Pulldown", ex.Name)
	assert.Equal(t, "Lat Pulldown", ex.EquipmentRequired)

	_, ok = c.Get("nope")
	assert.False(t, ok)
}

func TestDefault_Back1HasNoReplacement(t *testing.T) {
	for _, ex := range Default().Exercises() {
		assert.NotEqual(t, "back_1", ex.ReplacesID)
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	machine := strength("machine")
	machine.EquipmentRequired = "Leg Press"

	noEquip := strength("free")

	selfRep := strength("self")
	selfRep.IsReplacement = true
	selfRep.ReplacesID = "self"

	badTarget := strength("bad_target")
	badTarget.IsReplacement = true
	badTarget.ReplacesID = "free"

	dangling := strength("dangling")
	dangling.IsReplacement = true
	dangling.ReplacesID = "ghost"

	unmarked := strength("unmarked")
	unmarked.ReplacesID = "machine"

	broken := strength("broken")
	broken.Sets = 0
	broken.Muscles = nil
	broken.Category = "Yoga"
	broken.Locations = []domain.Location{"Park"}

	err := Validate([]domain.Exercise{machine, noEquip, selfRep, badTarget, dangling, unmarked, broken, strength("machine")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))

	errs := multierr.Errors(err)
	assert.Len(t, errs, 9)
	assert.Contains(t, err.Error(), "cannot replace itself")
	assert.Contains(t, err.Error(), "requires no equipment")
	assert.Contains(t, err.Error(), `replaces unknown exercise "ghost"`)
	assert.Contains(t, err.Error(), "not marked as replacement")
	assert.Contains(t, err.Error(), `duplicate id "machine"`)
}

func TestValidate_DuplicateReplacement(t *testing.T) {
	machine := strength("machine")
	machine.EquipmentRequired = "Leg Press"
	r1, r2 := strength("r1"), strength("r2")
	r1.IsReplacement, r1.ReplacesID = true, "machine"
	r2.IsReplacement, r2.ReplacesID = true, "machine"

	err := Validate([]domain.Exercise{machine, r1, r2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `already replaced by "r1"`)
}

func TestValidate_Empty(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestNew_CopiesInput(t *testing.T) {
	in := []domain.Exercise{strength("a")}
	c, err := New(in)
	require.NoError(t, err)

	in[0].Name = "mutated"
	ex, _ := c.Get("a")
	assert.Equal(t, "a", ex.Name)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	yaml := `
exercises:
  - id: leg_2
    name: Leg Press
    muscles: [Legs]
    sets: 3
    reps: "12"
    category: Strength
    location: [Gym]
    difficulty: Beginner
    equipment_required: Leg Press
  - id: leg_2r
    name: Wall Sit
    muscles: [Legs]
    sets: 3
    reps: 45s
    category: Strength
    location: [Gym, Home]
    difficulty: Beginner
    is_replacement: true
    replaces_id: leg_2
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	rep, ok := c.Get("leg_2r")
	require.True(t, ok)
	assert.True(t, rep.IsReplacement)
	assert.Equal(t, "leg_2", rep.ReplacesID)
	assert.Equal(t, []domain.Location{domain.LocationGym, domain.LocationHome}, rep.Locations)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEquipment(t *testing.T) {
	eq := Equipment()
	assert.NotEmpty(t, eq)
	eq[0].Name = "changed"
	assert.NotEqual(t, "changed", Equipment()[0].Name)
}
