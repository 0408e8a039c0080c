package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBAC(t *testing.T) {
	res, err := CalculateBAC(BACInput{WeightKg: 70, Gender: Male, Drinks: 3, HoursElapsed: 2})
	require.NoError(t, err)
	// bodyWater = 70000*0.68 = 47600g; alcohol = 42g; 42/476 - 0.03 = 0.0582
	assert.Equal(t, 0.058, res.Percent)
	assert.Equal(t, "Increased Impairment", res.Category)
	assert.False(t, res.OverLegalLimit)
}

func TestCalculateBACFemaleRatio(t *testing.T) {
	res, err := CalculateBAC(BACInput{WeightKg: 60, Gender: Female, Drinks: 2, HoursElapsed: 1})
	require.NoError(t, err)
	// bodyWater = 60000*0.55 = 33000g; 28/330 - 0.015 = 0.0698...
	assert.Equal(t, 0.07, res.Percent)
	assert.Equal(t, "Increased Impairment", res.Category)
	assert.False(t, res.OverLegalLimit)
}

func TestCalculateBACNeverNegative(t *testing.T) {
	res, err := CalculateBAC(BACInput{WeightKg: 70, Gender: Male, Drinks: 1, HoursElapsed: 48})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Percent)
	assert.Equal(t, "Minimal Impairment", res.Category)
	assert.False(t, res.OverLegalLimit)
}

func TestCalculateBACLegalLimitFlag(t *testing.T) {
	// 6 drinks, no elapsed time: 84/476 = 0.176
	res, err := CalculateBAC(BACInput{WeightKg: 70, Gender: Male, Drinks: 6})
	require.NoError(t, err)
	assert.Equal(t, 0.176, res.Percent)
	assert.Equal(t, "Severe Impairment", res.Category)
	assert.True(t, res.OverLegalLimit)
}

func TestBACCategoryBands(t *testing.T) {
	cases := []struct {
		bac      float64
		category string
	}{
		{0.0, "Minimal Impairment"},
		{0.019, "Minimal Impairment"},
		{0.02, "Mild Impairment"},
		{0.049, "Mild Impairment"},
		{0.05, "Increased Impairment"},
		{0.079, "Increased Impairment"},
		{0.08, "Significant Impairment"},
		{0.149, "Significant Impairment"},
		{0.15, "Severe Impairment"},
		{0.299, "Severe Impairment"},
		{0.3, "Potentially Life-Threatening"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.category, BACCategory(tc.bac), "bac=%v", tc.bac)
	}
}

func TestCalculateBACValidation(t *testing.T) {
	_, err := CalculateBAC(BACInput{WeightKg: 0, Gender: Male, Drinks: 1})
	assert.Error(t, err)
	_, err = CalculateBAC(BACInput{WeightKg: 70, Gender: Male, Drinks: 0})
	assert.Error(t, err)
	_, err = CalculateBAC(BACInput{WeightKg: 70, Gender: Male, Drinks: 1, HoursElapsed: -1})
	assert.Error(t, err)
	_, err = CalculateBAC(BACInput{WeightKg: 70, Gender: "x", Drinks: 1})
	assert.Error(t, err)
}
