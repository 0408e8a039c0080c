package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMIMetric(t *testing.T) {
	res, err := CalculateBMI(BMIInput{Height: 175, Weight: 70, UnitSystem: Metric})
	require.NoError(t, err)
	assert.Equal(t, 22.9, res.Value)
	assert.Equal(t, "Normal weight", res.Category)
}

func TestCalculateBMIImperial(t *testing.T) {
	// 68.9in / 154.3lb is roughly the same body as the metric case
	res, err := CalculateBMI(BMIInput{Height: 68.9, Weight: 154.3, UnitSystem: Imperial})
	require.NoError(t, err)
	assert.InDelta(t, 22.9, res.Value, 0.2)
	assert.Equal(t, "Normal weight", res.Category)
}

func TestCalculateBMIDefaultsToMetric(t *testing.T) {
	res, err := CalculateBMI(BMIInput{Height: 175, Weight: 70})
	require.NoError(t, err)
	assert.Equal(t, 22.9, res.Value)
}

func TestBMICategoryBoundaries(t *testing.T) {
	cases := []struct {
		bmi      float64
		category string
	}{
		{18.4, "Underweight"},
		{18.5, "Normal weight"},
		{24.9999, "Normal weight"},
		{25, "Overweight"},
		{29.9999, "Overweight"},
		{30, "Obesity"},
		{45, "Obesity"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.category, BMICategory(tc.bmi), "bmi=%v", tc.bmi)
	}
}

func TestCalculateBMIRejectsNonPositive(t *testing.T) {
	_, err := CalculateBMI(BMIInput{Height: 0, Weight: 70})
	assert.Error(t, err)
	_, err = CalculateBMI(BMIInput{Height: 175, Weight: -1})
	assert.Error(t, err)
}

func TestCalculateBMIIsIdempotent(t *testing.T) {
	in := BMIInput{Height: 162.5, Weight: 55.4, UnitSystem: Metric}
	first, err := CalculateBMI(in)
	require.NoError(t, err)
	second, err := CalculateBMI(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
