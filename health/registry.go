package health

import (
	"encoding/json"
	"fmt"
	"time"
)

// Calculator is one entry of the calculator registry: fixed metadata plus a
// compute function dispatching a raw JSON payload to the typed formula.
// Which calculator runs is selected by ID, never by injected behavior.
type Calculator struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Compute func(raw json.RawMessage, now time.Time) (interface{}, error) `json:"-"`
}

const dateLayout = "2006-01-02"

type ageRequest struct {
	BirthDate string `json:"birth_date" binding:"required"`
}

type dueDateRequest struct {
	LastMenstrualPeriod string `json:"last_menstrual_period" binding:"required"`
}

var calculators = []Calculator{
	{
		ID:          "bmi",
		Name:        "BMI Calculator",
		Description: "Body Mass Index from height and weight",
		Compute: func(raw json.RawMessage, _ time.Time) (interface{}, error) {
			var in BMIInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, err
			}
			return CalculateBMI(in)
		},
	},
	{
		ID:          "body-fat",
		Name:        "Body Fat Calculator",
		Description: "Body fat percentage estimate",
		Compute: func(raw json.RawMessage, _ time.Time) (interface{}, error) {
			var in BodyFatInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, err
			}
			return CalculateBodyFat(in)
		},
	},
	{
		ID:          "calories",
		Name:        "Calorie Calculator",
		Description: "Daily calorie needs via Mifflin-St Jeor",
		Compute: func(raw json.RawMessage, _ time.Time) (interface{}, error) {
			var in CalorieInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, err
			}
			return CalculateCalories(in)
		},
	},
	{
		ID:          "ideal-weight",
		Name:        "Ideal Weight Calculator",
		Description: "Healthy weight range via the Devine formula",
		Compute: func(raw json.RawMessage, _ time.Time) (interface{}, error) {
			var in IdealWeightInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, err
			}
			return CalculateIdealWeight(in)
		},
	},
	{
		ID:          "heart-rate",
		Name:        "Heart Rate Zone Calculator",
		Description: "Karvonen training zones",
		Compute: func(raw json.RawMessage, _ time.Time) (interface{}, error) {
			var in HeartRateInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, err
			}
			return CalculateHeartRateZones(in)
		},
	},
	{
		ID:          "bac",
		Name:        "Blood Alcohol Calculator",
		Description: "Widmark blood alcohol estimate",
		Compute: func(raw json.RawMessage, _ time.Time) (interface{}, error) {
			var in BACInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, err
			}
			return CalculateBAC(in)
		},
	},
	{
		ID:          "protein",
		Name:        "Protein Calculator",
		Description: "Daily protein requirement",
		Compute: func(raw json.RawMessage, _ time.Time) (interface{}, error) {
			var in ProteinInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, err
			}
			return CalculateProtein(in)
		},
	},
	{
		ID:          "age",
		Name:        "Age Calculator",
		Description: "Exact age and next birthday",
		Compute: func(raw json.RawMessage, now time.Time) (interface{}, error) {
			var req ageRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return nil, err
			}
			birth, err := time.Parse(dateLayout, req.BirthDate)
			if err != nil {
				return nil, fmt.Errorf("invalid birth_date: %w", err)
			}
			return CalculateAge(AgeInput{BirthDate: birth}, now)
		},
	},
	{
		ID:          "due-date",
		Name:        "Pregnancy Due Date Calculator",
		Description: "Due date and trimester via Naegele's rule",
		Compute: func(raw json.RawMessage, now time.Time) (interface{}, error) {
			var req dueDateRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return nil, err
			}
			lmp, err := time.Parse(dateLayout, req.LastMenstrualPeriod)
			if err != nil {
				return nil, fmt.Errorf("invalid last_menstrual_period: %w", err)
			}
			return CalculateDueDate(DueDateInput{LastMenstrualPeriod: lmp}, now)
		},
	},
}

// Calculators lists every registered calculator in display order.
func Calculators() []Calculator {
	out := make([]Calculator, len(calculators))
	copy(out, calculators)
	return out
}

// Lookup finds a calculator by its ID.
func Lookup(id string) (Calculator, bool) {
	for _, c := range calculators {
		if c.ID == id {
			return c, true
		}
	}
	return Calculator{}, false
}
