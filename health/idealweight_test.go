package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateIdealWeightMaleMediumFrame(t *testing.T) {
	res, err := CalculateIdealWeight(IdealWeightInput{HeightCm: 170, Gender: Male, FrameSize: MediumFrame})
	require.NoError(t, err)
	// base = 50 + 2.3*(170-152.4)/2.54 = 65.94
	assert.Equal(t, 61, res.MinKg)
	assert.Equal(t, 71, res.MaxKg)
}

func TestCalculateIdealWeightFrameAdjustments(t *testing.T) {
	cases := []struct {
		gender   Gender
		frame    FrameSize
		min, max int
	}{
		{Male, SmallFrame, 51, 61},
		{Male, LargeFrame, 71, 81},
		{Female, SmallFrame, 48, 58}, // base 61.44
		{Female, MediumFrame, 56, 66},
		{Female, LargeFrame, 64, 74},
	}
	for _, tc := range cases {
		res, err := CalculateIdealWeight(IdealWeightInput{HeightCm: 170, Gender: tc.gender, FrameSize: tc.frame})
		require.NoError(t, err)
		assert.Equal(t, tc.min, res.MinKg, "%s %s", tc.gender, tc.frame)
		assert.Equal(t, tc.max, res.MaxKg, "%s %s", tc.gender, tc.frame)
		assert.LessOrEqual(t, res.MinKg, res.MaxKg)
	}
}

func TestCalculateIdealWeightValidation(t *testing.T) {
	_, err := CalculateIdealWeight(IdealWeightInput{HeightCm: 0, Gender: Male, FrameSize: MediumFrame})
	assert.Error(t, err)
	_, err = CalculateIdealWeight(IdealWeightInput{HeightCm: 170, Gender: Male, FrameSize: "huge"})
	assert.Error(t, err)
	_, err = CalculateIdealWeight(IdealWeightInput{HeightCm: 170, Gender: "x", FrameSize: MediumFrame})
	assert.Error(t, err)
}
