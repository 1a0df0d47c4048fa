package reports

import (
	"omerald-service/internal/app/models"
)

// NormalizeShape canonicalizes where a report keeps its parsed lab data.
// Older writers stored parsedData, the report name and dates at the top
// level; newer ones nest them under reportData. The returned record always
// exposes reportData when the legacy fields allow synthesizing one.
//
// A nil record is returned unchanged, and so is any record that already has
// a non-nil reportData (whatever its shape; user-shared records keep a raw
// URL string there). Synthesis happens only when the top-level parsedData is
// a non-array object. Nothing here ever errors: every field read tolerates
// absence.
func NormalizeShape(report models.Report) models.Report {
	if report == nil {
		return report
	}

	if value, ok := report["reportData"]; ok && value != nil {
		return report
	}

	parsedData, ok := report["parsedData"].(map[string]interface{})
	if !ok || parsedData == nil {
		return report
	}

	normalized := report.Clone()
	reportName := report.FirstStr(models.ReportNameKeys...)
	if reportName == "" {
		reportName = "Report"
	}

	normalized["reportData"] = map[string]interface{}{
		"reportName":  reportName,
		"parsedData":  parsedData,
		"reportDate":  report.FirstStr(models.ReportDateKeys...),
		"updatedDate": report.FirstStr("updatedDate", "updatedAt"),
	}
	return normalized
}
