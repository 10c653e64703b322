package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() UserProfile {
	return UserProfile{
		FirstName: "Ana",
		LastName:  "Petrovic",
		Age:       29,
		Gender:    GenderFemale,
		Goal:      GoalStayFit,
		HeightCm:  170,
		WeightKg:  65,
		Location:  LocationGym,
	}
}

func TestUserProfile_Validate_OK(t *testing.T) {
	p := validProfile()
	assert.NoError(t, p.Validate())

	p.Age = 0 // optional
	p.Gender = ""
	assert.NoError(t, p.Validate())
}

func TestUserProfile_Validate_Fields(t *testing.T) {
	p := validProfile()
	p.FirstName = "  "
	p.HeightCm = 99
	p.WeightKg = 301
	p.Age = 12
	p.Location = "Park"

	err := p.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 5)
	assert.Contains(t, verr.Fields, "firstName")
	assert.Contains(t, verr.Fields, "height")
	assert.Contains(t, verr.Fields, "weight")
	assert.Contains(t, verr.Fields, "age")
	assert.Contains(t, verr.Fields, "location")
	assert.Contains(t, err.Error(), "height: Height must be between 100cm and 250cm")
}

func TestUserProfile_Validate_Bounds(t *testing.T) {
	p := validProfile()
	p.HeightCm, p.WeightKg = MinHeightCm, MinWeightKg
	assert.NoError(t, p.Validate())
	p.HeightCm, p.WeightKg = MaxHeightCm, MaxWeightKg
	assert.NoError(t, p.Validate())
}

func TestUserProfile_HasEquipment(t *testing.T) {
	p := validProfile()
	p.AvailableEquipment = []string{"Dumbbells", "Treadmill"}

	assert.True(t, p.HasEquipment("Dumbbells"))
	assert.False(t, p.HasEquipment("Leg Press"))

	p.Location = LocationHome
	assert.False(t, p.HasEquipment("Dumbbells"))
}
