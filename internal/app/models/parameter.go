package models

// Parameter is one lab test line item from a parsed report. Value and the
// range bounds stay interface{} because legacy records mix numbers, numeric
// strings and "N/A".
type Parameter struct {
	Name        string       `json:"name"`
	Value       interface{}  `json:"value,omitempty"`
	Units       string       `json:"units,omitempty"`
	BioRefRange *BioRefRange `json:"bioRefRange,omitempty"`
}

type BioRefRange struct {
	BasicRange   []RangeEntry  `json:"basicRange,omitempty"`
	AdvanceRange *AdvanceRange `json:"advanceRange,omitempty"`
}

type AdvanceRange struct {
	AgeRange    []AgeRangeEntry    `json:"ageRange,omitempty"`
	GenderRange []GenderRangeEntry `json:"genderRange,omitempty"`
}

type RangeEntry struct {
	Min  interface{} `json:"min,omitempty"`
	Max  interface{} `json:"max,omitempty"`
	Unit string      `json:"unit,omitempty"`
}

type AgeRangeEntry struct {
	RangeEntry
	AgeRangeType string `json:"ageRangeType,omitempty"`
}

type GenderRangeEntry struct {
	RangeEntry
	GenderRangeType string `json:"genderRangeType,omitempty"`
}

// Component is a free-text report section with attached images.
type Component struct {
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content,omitempty"`
	Images  []string `json:"images,omitempty"`
}
