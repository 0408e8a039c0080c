package health

import (
	"errors"
	"math"
)

type FrameSize string

const (
	SmallFrame  FrameSize = "small"
	MediumFrame FrameSize = "medium"
	LargeFrame  FrameSize = "large"
)

// Frame adjustments in kg, male/female.
var frameAdjustments = map[FrameSize]map[Gender]float64{
	SmallFrame:  {Male: -10, Female: -8},
	MediumFrame: {Male: 0, Female: 0},
	LargeFrame:  {Male: 10, Female: 8},
}

type IdealWeightInput struct {
	HeightCm  float64   `json:"height_cm" binding:"required"`
	Gender    Gender    `json:"gender" binding:"required"`
	FrameSize FrameSize `json:"frame_size" binding:"required"`
}

type IdealWeightResult struct {
	MinKg int `json:"min_kg"`
	MaxKg int `json:"max_kg"`
}

// CalculateIdealWeight derives a healthy weight range from the Devine
// formula plus a frame-size adjustment.
func CalculateIdealWeight(in IdealWeightInput) (IdealWeightResult, error) {
	if in.HeightCm <= 0 {
		return IdealWeightResult{}, errors.New("height must be positive")
	}
	adjByGender, ok := frameAdjustments[in.FrameSize]
	if !ok {
		return IdealWeightResult{}, errors.New("unknown frame size")
	}
	adj, ok := adjByGender[in.Gender]
	if !ok {
		return IdealWeightResult{}, errors.New("gender must be male or female")
	}

	base := 45.5
	if in.Gender == Male {
		base = 50
	}
	base += 2.3 * (in.HeightCm - 152.4) / 2.54

	return IdealWeightResult{
		MinKg: int(math.Round(base - 5 + adj)),
		MaxKg: int(math.Round(base + 5 + adj)),
	}, nil
}
