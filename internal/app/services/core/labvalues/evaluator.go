package labvalues

import (
	"fmt"
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/utils"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Status classifies a lab value against its reference ranges.
type Status string

const (
	StatusBelow   Status = "below"
	StatusInRange Status = "in-range"
	StatusAbove   Status = "above"
	StatusUnknown Status = "unknown"
)

// Colors the UI maps each status to.
const (
	ColorInRange = "green"
	ColorBelow   = "yellow"
	ColorAbove   = "red"
	ColorUnknown = "gray"
)

// Evaluation is the outcome for one parameter: the resolved status and the
// merged human-readable range string.
type Evaluation struct {
	Status       Status
	DisplayRange string
}

// Evaluate classifies a parameter value against every defined reference
// range. Ranges are scanned in the order basic, then gender, then age, and
// the below/above/in-range flags accumulate across all entries: once a flag
// is set by any entry it stays set. In-range wins only when no entry
// flagged the value below or above, and below beats above when different
// entries disagree. That tie-break is inherited behavior; the scan order
// and accumulation must not change without flagging it.
func Evaluate(parameter models.Parameter) Evaluation {
	evaluation := Evaluation{
		Status:       StatusUnknown,
		DisplayRange: buildDisplayRange(parameter.BioRefRange),
	}

	value, ok := utils.ToFloat64(parameter.Value)
	if !ok || parameter.BioRefRange == nil {
		return evaluation
	}

	var isBelow, isAbove, isInRange bool
	scan := func(min, max interface{}) {
		minValue, minOK := utils.ToFloat64(min)
		maxValue, maxOK := utils.ToFloat64(max)
		if !minOK || !maxOK {
			return
		}
		switch {
		case value < minValue:
			isBelow = true
		case value > maxValue:
			isAbove = true
		default:
			isInRange = true
		}
	}

	for _, entry := range parameter.BioRefRange.BasicRange {
		scan(entry.Min, entry.Max)
	}
	if advance := parameter.BioRefRange.AdvanceRange; advance != nil {
		for _, entry := range advance.GenderRange {
			scan(entry.Min, entry.Max)
		}
		for _, entry := range advance.AgeRange {
			scan(entry.Min, entry.Max)
		}
	}

	switch {
	case isInRange && !isBelow && !isAbove:
		evaluation.Status = StatusInRange
	case isBelow:
		evaluation.Status = StatusBelow
	case isAbove:
		evaluation.Status = StatusAbove
	}

	return evaluation
}

// ColorFor returns the UI color for a status.
func ColorFor(status Status) string {
	switch status {
	case StatusInRange:
		return ColorInRange
	case StatusBelow:
		return ColorBelow
	case StatusAbove:
		return ColorAbove
	default:
		return ColorUnknown
	}
}

// buildDisplayRange concatenates a human-readable string for every range
// entry: basic ranges labeled "Normal", gender and age ranges labeled by
// their capitalized type. Returns "-" when no ranges exist.
func buildDisplayRange(bioRefRange *models.BioRefRange) string {
	if bioRefRange == nil {
		return "-"
	}

	parts := []string{}
	for _, entry := range bioRefRange.BasicRange {
		if formatted := formatRange("Normal", entry); formatted != "" {
			parts = append(parts, formatted)
		}
	}
	if advance := bioRefRange.AdvanceRange; advance != nil {
		for _, entry := range advance.GenderRange {
			if formatted := formatRange(utils.CapitalizeFirst(entry.GenderRangeType), entry.RangeEntry); formatted != "" {
				parts = append(parts, formatted)
			}
		}
		for _, entry := range advance.AgeRange {
			if formatted := formatRange(utils.CapitalizeFirst(entry.AgeRangeType), entry.RangeEntry); formatted != "" {
				parts = append(parts, formatted)
			}
		}
	}

	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func formatRange(label string, entry models.RangeEntry) string {
	minValue, minOK := utils.ToFloat64(entry.Min)
	maxValue, maxOK := utils.ToFloat64(entry.Max)
	if !minOK || !maxOK {
		return ""
	}
	if label == "" {
		label = "Normal"
	}
	formatted := fmt.Sprintf("%s: %s - %s", label, formatNumber(minValue), formatNumber(maxValue))
	if entry.Unit != "" {
		formatted += " " + entry.Unit
	}
	return formatted
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// ParseParameters reshapes the loose parameter entries found under
// reportData.parsedData.parameters into typed records. Entries that do not
// reshape cleanly are dropped rather than failing the whole report.
func ParseParameters(raw []interface{}) []models.Parameter {
	parameters := make([]models.Parameter, 0, len(raw))
	for _, entry := range raw {
		encoded, err := json.Marshal(entry)
		if err != nil {
			continue
		}
		var parameter models.Parameter
		if err := json.Unmarshal(encoded, &parameter); err != nil {
			continue
		}
		parameters = append(parameters, parameter)
	}
	return parameters
}
