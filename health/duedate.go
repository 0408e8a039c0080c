package health

import (
	"errors"
	"time"
)

// gestationDays is Naegele's rule: 40 weeks from the last menstrual period.
const gestationDays = 280

type DueDateInput struct {
	LastMenstrualPeriod time.Time `json:"last_menstrual_period"`
}

// Trimester and WeekOfPregnancy carry no omitempty: week 0 is a valid value
// for the first seven days after the LMP, so it must survive serialization.
type DueDateResult struct {
	DueDate         string `json:"due_date"`
	Started         bool   `json:"started"`
	Trimester       int    `json:"trimester"`
	WeekOfPregnancy int    `json:"week_of_pregnancy"`
}

// CalculateDueDate applies Naegele's rule and places today in a trimester.
// Before the LMP the pregnancy has not started; past the due date it is
// pinned at trimester 3, week 40 rather than extrapolated.
func CalculateDueDate(in DueDateInput, today time.Time) (DueDateResult, error) {
	lmp := stripTime(in.LastMenstrualPeriod)
	now := stripTime(today)
	if lmp.IsZero() {
		return DueDateResult{}, errors.New("last menstrual period date is required")
	}

	due := lmp.AddDate(0, 0, gestationDays)
	result := DueDateResult{DueDate: due.Format("2006-01-02")}

	if now.Before(lmp) {
		return result, nil
	}

	result.Started = true
	if due.Before(now) {
		result.Trimester = 3
		result.WeekOfPregnancy = 40
		return result, nil
	}

	weeks := daysBetween(now, lmp) / 7
	result.WeekOfPregnancy = weeks
	switch {
	case weeks < 13:
		result.Trimester = 1
	case weeks < 27:
		result.Trimester = 2
	default:
		result.Trimester = 3
	}
	return result, nil
}
