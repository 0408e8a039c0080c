package models

import (
	"time"
)

// MedicineDetails is the nested info block the vision model returns per
// medicine.
type MedicineDetails struct {
	Purpose      string   `json:"purpose"`
	SideEffects  string   `json:"sideEffects"`
	Warnings     string   `json:"warnings"`
	Alternatives []string `json:"alternatives"`
}

type Medicine struct {
	Name      string          `json:"name"`
	Dosage    string          `json:"dosage"`
	Frequency string          `json:"frequency"`
	Duration  string          `json:"duration"`
	Notes     string          `json:"notes"`
	Details   MedicineDetails `json:"details"`
}

// PrescriptionData is the normalized analysis payload served to clients.
type PrescriptionData struct {
	Medicines []Medicine `json:"medicines"`
	Diagnosis string     `json:"diagnosis"`
	Accuracy  float64    `json:"accuracy"`
	Issues    []string   `json:"issues"`
	RawText   string     `json:"rawText"`
}

// Prescription is one stored analysis. Data is kept as serialized JSON so
// the AI payload round-trips without a table per nested field.
type Prescription struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	Diagnosis string    `gorm:"type:text" json:"diagnosis"`
	Accuracy  float64   `json:"accuracy"`
	Data      string    `gorm:"type:text" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Defaults substituted when the vision response omits fields.
const (
	UnknownDiagnosis   = "Unknown diagnosis"
	DefaultAccuracy    = 0.1
	PlaceholderRawText = "Could not extract raw text from the prescription image."
)

var DefaultIssues = []string{
	"The analysis may be incomplete.",
	"Verify all medicines and dosages with a pharmacist.",
}

// ApplyDefaults fills the gaps of a partially populated AI response so the
// client always receives the full shape.
func (p *PrescriptionData) ApplyDefaults() {
	if p.Medicines == nil {
		p.Medicines = []Medicine{}
	}
	for i := range p.Medicines {
		if p.Medicines[i].Details.Alternatives == nil {
			p.Medicines[i].Details.Alternatives = []string{}
		}
	}
	if p.Diagnosis == "" {
		p.Diagnosis = UnknownDiagnosis
	}
	if p.Accuracy == 0 {
		p.Accuracy = DefaultAccuracy
	}
	if len(p.Issues) == 0 {
		p.Issues = append([]string{}, DefaultIssues...)
	}
	if p.RawText == "" {
		p.RawText = PlaceholderRawText
	}
}
