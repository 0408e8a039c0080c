package health

import (
	"errors"
	"math"
)

// ActivityLevel keys the Mifflin-St Jeor multipliers.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightlyActive"
	ModeratelyActive ActivityLevel = "moderatelyActive"
	VeryActive       ActivityLevel = "veryActive"
	ExtraActive      ActivityLevel = "extraActive"
)

var activityFactors = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtraActive:      1.9,
}

type CalorieInput struct {
	WeightKg      float64       `json:"weight_kg" binding:"required"`
	HeightCm      float64       `json:"height_cm" binding:"required"`
	Age           int           `json:"age" binding:"required"`
	Gender        Gender        `json:"gender" binding:"required"`
	ActivityLevel ActivityLevel `json:"activity_level" binding:"required"`
}

type CalorieResult struct {
	DailyCalories int `json:"daily_calories"`
}

// CalculateCalories applies the Mifflin-St Jeor equation and an activity
// multiplier; the result is rounded to the nearest calorie.
func CalculateCalories(in CalorieInput) (CalorieResult, error) {
	if in.WeightKg <= 0 || in.HeightCm <= 0 || in.Age <= 0 {
		return CalorieResult{}, errors.New("weight, height and age must be positive")
	}
	factor, ok := activityFactors[in.ActivityLevel]
	if !ok {
		return CalorieResult{}, errors.New("unknown activity level")
	}

	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	if in.Gender == Male {
		bmr += 5
	} else if in.Gender == Female {
		bmr -= 161
	} else {
		return CalorieResult{}, errors.New("gender must be male or female")
	}

	return CalorieResult{DailyCalories: int(math.Round(bmr * factor))}, nil
}
