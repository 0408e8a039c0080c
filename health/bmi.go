package health

import (
	"errors"
	"math"
)

// UnitSystem selects between metric (cm/kg) and imperial (in/lb) inputs.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

type BMIInput struct {
	Height     float64    `json:"height" binding:"required"`
	Weight     float64    `json:"weight" binding:"required"`
	UnitSystem UnitSystem `json:"unit_system"`
}

type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// CalculateBMI computes BMI from height and weight in the given unit system.
// Metric expects cm/kg, imperial in/lb. The value is rounded to 1 decimal.
func CalculateBMI(in BMIInput) (BMIResult, error) {
	raw, err := rawBMI(in)
	if err != nil {
		return BMIResult{}, err
	}
	bmi := round1(raw)
	return BMIResult{Value: bmi, Category: BMICategory(bmi)}, nil
}

// rawBMI is the unrounded value; body fat builds on it directly so that
// intermediate rounding does not shift the estimate.
func rawBMI(in BMIInput) (float64, error) {
	if in.Height <= 0 || in.Weight <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if in.UnitSystem == Imperial {
		return 703 * in.Weight / (in.Height * in.Height), nil
	}
	h := in.Height / 100.0 // to meters
	return in.Weight / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obesity"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
