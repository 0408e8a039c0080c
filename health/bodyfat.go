package health

import "errors"

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type BodyFatInput struct {
	Height     float64    `json:"height" binding:"required"`
	Weight     float64    `json:"weight" binding:"required"`
	Age        int        `json:"age" binding:"required"`
	Gender     Gender     `json:"gender" binding:"required"`
	UnitSystem UnitSystem `json:"unit_system"`
}

type BodyFatResult struct {
	Percent  float64 `json:"percent"`
	Category string  `json:"category"`
}

// CalculateBodyFat estimates body fat percentage from BMI, age and gender.
// This is the BMI-substitution variant shipped in the product, not the
// circumference-based U.S. Navy method.
func CalculateBodyFat(in BodyFatInput) (BodyFatResult, error) {
	if in.Age <= 0 {
		return BodyFatResult{}, errors.New("age must be positive")
	}
	if in.Gender != Male && in.Gender != Female {
		return BodyFatResult{}, errors.New("gender must be male or female")
	}

	bmi, err := rawBMI(BMIInput{Height: in.Height, Weight: in.Weight, UnitSystem: in.UnitSystem})
	if err != nil {
		return BodyFatResult{}, err
	}

	sexTerm := 0.0
	if in.Gender == Male {
		sexTerm = 1.0
	}

	percent := round1(1.2*bmi + 0.23*float64(in.Age) - 10.8*sexTerm - 5.4)
	return BodyFatResult{Percent: percent, Category: BodyFatCategory(percent, in.Gender)}, nil
}

// BodyFatCategory applies gender-specific thresholds.
func BodyFatCategory(percent float64, gender Gender) string {
	if gender == Male {
		switch {
		case percent < 6:
			return "Essential fat"
		case percent < 14:
			return "Athletic"
		case percent < 18:
			return "Fitness"
		case percent < 25:
			return "Average"
		default:
			return "Obese"
		}
	}
	switch {
	case percent < 13:
		return "Essential fat"
	case percent < 21:
		return "Athletic"
	case percent < 25:
		return "Fitness"
	case percent < 32:
		return "Average"
	default:
		return "Obese"
	}
}
