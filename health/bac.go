package health

import (
	"errors"
	"math"
)

// Widmark distribution constants and metabolism rate.
const (
	maleBodyWaterRatio   = 0.68
	femaleBodyWaterRatio = 0.55
	gramsPerDrink        = 14    // pure ethanol in one standard drink
	metabolismPerHour    = 0.015 // %BAC eliminated per hour
	legalLimit           = 0.08
)

type BACInput struct {
	WeightKg     float64 `json:"weight_kg" binding:"required"`
	Gender       Gender  `json:"gender" binding:"required"`
	Drinks       int     `json:"drinks" binding:"required"`
	HoursElapsed float64 `json:"hours_elapsed"`
}

type BACResult struct {
	Percent        float64 `json:"percent"`
	Category       string  `json:"category"`
	OverLegalLimit bool    `json:"over_legal_limit"`
}

// CalculateBAC estimates blood alcohol content with the Widmark approach,
// clamped at zero and rounded to 3 decimals.
func CalculateBAC(in BACInput) (BACResult, error) {
	if in.WeightKg <= 0 {
		return BACResult{}, errors.New("weight must be positive")
	}
	if in.Drinks < 1 {
		return BACResult{}, errors.New("drinks must be at least 1")
	}
	if in.HoursElapsed < 0 {
		return BACResult{}, errors.New("hours elapsed cannot be negative")
	}

	ratio := femaleBodyWaterRatio
	switch in.Gender {
	case Male:
		ratio = maleBodyWaterRatio
	case Female:
	default:
		return BACResult{}, errors.New("gender must be male or female")
	}

	bodyWaterGrams := in.WeightKg * 1000 * ratio
	alcoholGrams := float64(in.Drinks) * gramsPerDrink

	bac := alcoholGrams/(bodyWaterGrams/100) - in.HoursElapsed*metabolismPerHour
	bac = math.Max(0, bac)
	bac = math.Round(bac*1000) / 1000

	return BACResult{
		Percent:        bac,
		Category:       BACCategory(bac),
		OverLegalLimit: bac >= legalLimit,
	}, nil
}

func BACCategory(bac float64) string {
	switch {
	case bac < 0.02:
		return "Minimal Impairment"
	case bac < 0.05:
		return "Mild Impairment"
	case bac < 0.08:
		return "Increased Impairment"
	case bac < 0.15:
		return "Significant Impairment"
	case bac < 0.3:
		return "Severe Impairment"
	default:
		return "Potentially Life-Threatening"
	}
}
