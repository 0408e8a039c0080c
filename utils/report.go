package utils

import (
	"fmt"
	"strings"

	"github.com/VibhourSharma/prescript-ease/models"
)

// BuildPrescriptionReport renders the plain-text summary offered as a
// download: diagnosis, numbered medicines, then the raw extracted text.
func BuildPrescriptionReport(data models.PrescriptionData) string {
	var b strings.Builder

	b.WriteString("PRESCRIPTION RESULTS\n\n")
	fmt.Fprintf(&b, "Diagnosis: %s\n\n", data.Diagnosis)
	b.WriteString("MEDICINES:\n")

	for i, med := range data.Medicines {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, med.Name, med.Dosage)
		fmt.Fprintf(&b, "   Frequency: %s\n", med.Frequency)
		fmt.Fprintf(&b, "   Duration: %s\n", med.Duration)
		fmt.Fprintf(&b, "   Notes: %s\n\n", med.Notes)
	}

	fmt.Fprintf(&b, "\nRaw Prescription Text:\n%s\n", data.RawText)
	return b.String()
}
