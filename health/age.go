package health

import (
	"errors"
	"time"
)

type AgeInput struct {
	BirthDate time.Time `json:"birth_date"`
}

type AgeResult struct {
	Years                 int    `json:"years"`
	Months                int    `json:"months"`
	Days                  int    `json:"days"`
	TotalDays             int    `json:"total_days"`
	NextBirthday          string `json:"next_birthday"`
	DaysUntilNextBirthday int    `json:"days_until_next_birthday"`
}

// CalculateAge breaks the interval from birth date to today into whole
// years, months and days. Adding those parts back onto the birth date by
// calendar arithmetic reconstructs today exactly.
func CalculateAge(in AgeInput, today time.Time) (AgeResult, error) {
	birth := stripTime(in.BirthDate)
	now := stripTime(today)
	if birth.After(now) {
		return AgeResult{}, errors.New("birth date cannot be in the future")
	}

	totalMonths := wholeMonthsBetween(now, birth)
	years := totalMonths / 12
	months := totalMonths % 12

	// same point in time as today, minus the leftover days
	intermediate := addMonthsClamped(birth, years*12+months)
	days := daysBetween(now, intermediate)

	// Year advance compares month then day against today; a Feb 29 birth
	// date normalizes to Mar 1 in non-leap years, same as the client runtime.
	nextYear := now.Year()
	if int(now.Month()) > int(birth.Month()) ||
		(now.Month() == birth.Month() && now.Day() >= birth.Day()) {
		nextYear++
	}
	nextBirthday := time.Date(nextYear, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)

	return AgeResult{
		Years:                 years,
		Months:                months,
		Days:                  days,
		TotalDays:             daysBetween(now, birth),
		NextBirthday:          nextBirthday.Format("2006-01-02"),
		DaysUntilNextBirthday: daysBetween(nextBirthday, now),
	}, nil
}
