package health

import (
	"errors"
	"math"
)

// ProteinActivity keys grams-per-kg multipliers.
type ProteinActivity string

const (
	ProteinSedentary ProteinActivity = "sedentary"
	ProteinActive    ProteinActivity = "active"
	ProteinAthlete   ProteinActivity = "athlete"
)

var proteinFactors = map[ProteinActivity]float64{
	ProteinSedentary: 0.8,
	ProteinActive:    1.2,
	ProteinAthlete:   1.8,
}

type ProteinInput struct {
	WeightKg float64         `json:"weight_kg" binding:"required"`
	Activity ProteinActivity `json:"activity" binding:"required"`
}

type ProteinResult struct {
	GramsPerDay int `json:"grams_per_day"`
}

// CalculateProtein returns the daily protein requirement in grams.
func CalculateProtein(in ProteinInput) (ProteinResult, error) {
	if in.WeightKg <= 0 {
		return ProteinResult{}, errors.New("weight must be positive")
	}
	factor, ok := proteinFactors[in.Activity]
	if !ok {
		return ProteinResult{}, errors.New("unknown activity level")
	}
	return ProteinResult{GramsPerDay: int(math.Round(in.WeightKg * factor))}, nil
}
