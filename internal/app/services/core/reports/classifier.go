package reports

import (
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/constvars"
)

// Origin is the single tagged answer to "what kind of report is this".
// It replaces the overlapping boolean flags legacy records carry with one
// value computed once by an ordered rule table.
type Origin string

const (
	OriginDCShared   Origin = "dc-shared"
	OriginUserShared Origin = "user-shared"
	OriginMyUpload   Origin = "my-upload"
	OriginUnknown    Origin = "unknown"
)

// DisplayMode selects which view the client renders for a report.
type DisplayMode string

const (
	DisplayThumbnailGrid    DisplayMode = "thumbnail-grid"
	DisplayEmbeddedViewer   DisplayMode = "embedded-viewer"
	DisplayDiagnosticReport DisplayMode = "diagnostic-report"
	DisplayPDFFallback      DisplayMode = "pdf-fallback"
	DisplayNoFiles          DisplayMode = "no-files"
)

// Classification is the full render decision derived from one report.
type Classification struct {
	Origin        Origin
	Display       DisplayMode
	SharedFromDC  bool
	UserShared    bool
	UserUploaded  bool
	HasParsedData bool
	// ShareStatus is the viewer's own accept state when the record carries
	// per-recipient share details, otherwise the record-level status.
	ShareStatus string
	Files       []string
}

// Classify inspects a shape-normalized report and the viewing user's phone
// number and decides the report origin and presentation mode. Every
// predicate defaults to false on missing fields; classification never
// fails.
func Classify(report models.Report, viewerPhone string, embeddedViewerEnabled bool) Classification {
	classification := Classification{
		Origin:  OriginUnknown,
		Display: DisplayNoFiles,
		Files:   []string{},
	}
	if report == nil {
		return classification
	}

	classification.SharedFromDC = isSharedFromDC(report)
	classification.Files = ResolveFiles(report)
	hasFiles := len(classification.Files) > 0

	isOmeraldShared := report.Bool("isOmeraldSharedReport") || report.Bool("isSharedReport")
	classification.UserShared = isOmeraldShared && !classification.SharedFromDC
	classification.UserUploaded = !classification.SharedFromDC && !isOmeraldShared &&
		report.OwnerID() != "" && hasFiles

	classification.HasParsedData = report.ParsedData() != nil
	classification.ShareStatus = shareStatusFor(report, viewerPhone)

	switch {
	case classification.SharedFromDC:
		classification.Origin = OriginDCShared
	case classification.UserShared:
		classification.Origin = OriginUserShared
	case classification.UserUploaded:
		classification.Origin = OriginMyUpload
	}

	showDiagnosticReport := (classification.HasParsedData || classification.SharedFromDC) &&
		!(classification.UserShared && hasFiles) &&
		!classification.UserUploaded

	switch {
	case hasFiles && embeddedViewerEnabled:
		classification.Display = DisplayEmbeddedViewer
	case hasFiles:
		classification.Display = DisplayThumbnailGrid
	case showDiagnosticReport:
		classification.Display = DisplayDiagnosticReport
	case hasPDFFallback(report, classification):
		classification.Display = DisplayPDFFallback
	default:
		// Not an error; the client renders the "No Files Available"
		// placeholder.
		classification.Display = DisplayNoFiles
	}

	return classification
}

// isSharedFromDC is true when any diagnostic-center marker is present: the
// explicit flag, share details, a populated diagnosticCenter.diagnostic
// object carrying an id, or parsed lab parameters on a record without an
// owning user.
func isSharedFromDC(report models.Report) bool {
	if report.Bool("isDCReport") {
		return true
	}
	if report.Has("shareDetail") || report.Has("sharedReportDetails") {
		return true
	}
	if center := report.Map("diagnosticCenter"); center != nil {
		if diagnostic, ok := center["diagnostic"].(map[string]interface{}); ok {
			if id, ok := diagnostic["id"].(string); ok && id != "" {
				return true
			}
		}
	}
	if len(report.Parameters()) > 0 && report.Str("userId") == "" {
		return true
	}
	return false
}

// shareStatusFor returns the viewer's per-recipient accept state when the
// share details carry one, falling back to the record-level status.
func shareStatusFor(report models.Report, viewerPhone string) string {
	details := report.Slice("shareDetail")
	if details == nil {
		details = report.Slice("sharedReportDetails")
	}
	if viewerPhone != "" {
		for _, entry := range details {
			detail, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			phone, _ := detail["phoneNumber"].(string)
			if phone != viewerPhone {
				continue
			}
			if status, ok := detail["status"].(string); ok && status != "" {
				return status
			}
		}
	}
	return report.Str("status")
}

// hasPDFFallback probes reportData pdf hints directly. The file resolver
// already captures pdf URLs as files, so this only fires for records whose
// sources all came up empty but still carry a pdf hint.
func hasPDFFallback(report models.Report, classification Classification) bool {
	if classification.HasParsedData || classification.SharedFromDC || len(classification.Files) > 0 {
		return false
	}
	reportData := report.Map("reportData")
	if reportData == nil {
		return false
	}
	for _, key := range []string{"pdfUrl", "url"} {
		if url, ok := reportData[key].(string); ok && url != "" {
			if ClassifyFileType(url, report.Str("fileType")) == constvars.FileTypePDF {
				return true
			}
		}
	}
	return false
}
