package health

import (
	"errors"
	"math"
)

type HeartRateInput struct {
	Age       int `json:"age" binding:"required"`
	RestingHR int `json:"resting_hr" binding:"required"`
}

// HeartRateZone is one Karvonen training band. Name, intensity and purpose
// are fixed metadata looked up by zone index, not computed.
type HeartRateZone struct {
	Name      string `json:"name"`
	Intensity string `json:"intensity"`
	MinBPM    int    `json:"min_bpm"`
	MaxBPM    int    `json:"max_bpm"`
	Purpose   string `json:"purpose"`
}

type HeartRateResult struct {
	MaxHR int             `json:"max_hr"`
	Zones []HeartRateZone `json:"zones"`
}

var zoneMeta = []struct {
	name, intensity, purpose string
}{
	{"Zone 1", "Very Light", "Warm-up & Recovery"},
	{"Zone 2", "Light", "Fat Burn & Base Building"},
	{"Zone 3", "Moderate", "Cardio & Endurance"},
	{"Zone 4", "Hard", "Anaerobic & Performance"},
	{"Zone 5", "Maximum", "Peak & Power"},
}

// Shared boundaries: each zone's max fraction is the next zone's min.
var zoneFractions = []float64{0.5, 0.6, 0.7, 0.8, 0.9, 1.0}

// CalculateHeartRateZones computes the five Karvonen zones from heart-rate
// reserve. Zone 5 tops out at maxHR exactly rather than the rounded
// 1.0-fraction value.
func CalculateHeartRateZones(in HeartRateInput) (HeartRateResult, error) {
	if in.Age <= 0 {
		return HeartRateResult{}, errors.New("age must be positive")
	}
	maxHR := 220 - in.Age
	if in.RestingHR <= 0 || in.RestingHR >= maxHR {
		return HeartRateResult{}, errors.New("resting heart rate must be between 0 and max heart rate")
	}

	reserve := float64(maxHR - in.RestingHR)
	zones := make([]HeartRateZone, 0, len(zoneMeta))
	for i, meta := range zoneMeta {
		zone := HeartRateZone{
			Name:      meta.name,
			Intensity: meta.intensity,
			Purpose:   meta.purpose,
			MinBPM:    int(math.Round(float64(in.RestingHR) + reserve*zoneFractions[i])),
			MaxBPM:    int(math.Round(float64(in.RestingHR) + reserve*zoneFractions[i+1])),
		}
		if i == len(zoneMeta)-1 {
			zone.MaxBPM = maxHR
		}
		zones = append(zones, zone)
	}

	return HeartRateResult{MaxHR: maxHR, Zones: zones}, nil
}
