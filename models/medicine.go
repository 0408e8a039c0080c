package models

// MedicineInfo is the reshaped drug-label record extracted from the first
// openFDA search hit. Absent fields carry the "_" placeholder so the client
// can render every section unconditionally.
type MedicineInfo struct {
	BrandName     string `json:"brand_name"`
	DoNotUse      string `json:"do_not_use"`
	Dosage        string `json:"dosage"`
	Usage         string `json:"usage"`
	SideEffects   string `json:"side_effects"`
	PregnancyInfo string `json:"pregnancy_info"`
}

const FieldPlaceholder = "_"
