package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeBMI(t *testing.T) {
	cases := []struct {
		score float64
		want  BMICategory
	}{
		{score: 17.9, want: BMIUnderweight},
		{score: 18.49, want: BMIUnderweight},
		{score: 18.5, want: BMINormal},
		{score: 24.99, want: BMINormal},
		{score: 25, want: BMIOverweight},
		{score: 41, want: BMIOverweight},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CategorizeBMI(tc.score), "score %.2f", tc.score)
	}
}

func TestCategorizeBMI_NeverObese(t *testing.T) {
	for score := 10.0; score < 80; score += 0.5 {
		assert.NotEqual(t, BMIObese, CategorizeBMI(score))
	}
}

func TestAnalyzeBMI(t *testing.T) {
	p := &UserProfile{HeightCm: 180, WeightKg: 90}
	info := AnalyzeBMI(p)

	assert.InDelta(t, 27.78, info.Score, 0.01)
	assert.Equal(t, BMIOverweight, info.Category)
	assert.Equal(t, IdealBMIRange, info.IdealRange)
	assert.NotEmpty(t, info.Message)
	assert.Equal(t, BMIOverweight, p.BMICategory())
}

func TestBMI_ZeroHeight(t *testing.T) {
	assert.Zero(t, BMI(0, 70))
}
