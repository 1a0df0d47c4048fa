package reports

import (
	"omerald-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func dcReport() models.Report {
	return models.Report{
		"isDCReport": true,
		"reportData": map[string]interface{}{
			"parsedData": map[string]interface{}{
				"parameters": []interface{}{
					map[string]interface{}{"name": "Hemoglobin", "value": 13.5},
				},
			},
		},
	}
}

func TestClassify_Origin(t *testing.T) {
	t.Run("explicit DC flag", func(t *testing.T) {
		classification := Classify(dcReport(), "", false)
		assert.Equal(t, OriginDCShared, classification.Origin)
		assert.True(t, classification.SharedFromDC)
	})

	t.Run("share details imply DC", func(t *testing.T) {
		report := models.Report{
			"shareDetail": []interface{}{
				map[string]interface{}{"phoneNumber": "111", "status": "pending"},
			},
		}

		assert.Equal(t, OriginDCShared, Classify(report, "", false).Origin)
	})

	t.Run("diagnostic center object with id implies DC", func(t *testing.T) {
		report := models.Report{
			"diagnosticCenter": map[string]interface{}{
				"diagnostic": map[string]interface{}{"id": "dc-9"},
			},
		}

		assert.Equal(t, OriginDCShared, Classify(report, "", false).Origin)
	})

	t.Run("parameters without owner imply DC", func(t *testing.T) {
		report := models.Report{
			"reportData": map[string]interface{}{
				"parsedData": map[string]interface{}{
					"parameters": []interface{}{map[string]interface{}{"name": "WBC"}},
				},
			},
		}

		assert.Equal(t, OriginDCShared, Classify(report, "", false).Origin)
	})

	t.Run("parameters with owner do not imply DC", func(t *testing.T) {
		report := models.Report{
			"userId": "user-1",
			"reportData": map[string]interface{}{
				"parsedData": map[string]interface{}{
					"parameters": []interface{}{map[string]interface{}{"name": "WBC"}},
				},
			},
		}

		classification := Classify(report, "", false)
		assert.False(t, classification.SharedFromDC)
	})

	t.Run("omerald shared beats user uploaded", func(t *testing.T) {
		report := models.Report{
			"isOmeraldSharedReport": true,
			"userId":                "user-1",
			"reportDoc":             "https://a.test/file.pdf",
		}

		classification := Classify(report, "", false)
		assert.Equal(t, OriginUserShared, classification.Origin)
		assert.True(t, classification.UserShared)
		assert.False(t, classification.UserUploaded)
	})

	t.Run("DC markers beat omerald shared flag", func(t *testing.T) {
		report := models.Report{
			"isDCReport":     true,
			"isSharedReport": true,
		}

		classification := Classify(report, "", false)
		assert.Equal(t, OriginDCShared, classification.Origin)
		assert.False(t, classification.UserShared, "a DC record is never user-shared")
	})

	t.Run("owned upload with files", func(t *testing.T) {
		report := models.Report{
			"userId":    "user-1",
			"reportDoc": "https://a.test/file.pdf",
		}

		classification := Classify(report, "", false)
		assert.Equal(t, OriginMyUpload, classification.Origin)
		assert.True(t, classification.UserUploaded)
	})

	t.Run("nothing matches yields unknown", func(t *testing.T) {
		report := models.Report{"name": "mystery"}
		assert.Equal(t, OriginUnknown, Classify(report, "", false).Origin)
	})
}

func TestClassify_Display(t *testing.T) {
	t.Run("files render the thumbnail grid", func(t *testing.T) {
		report := models.Report{
			"userId":    "user-1",
			"reportDoc": "https://a.test/one.jpg,https://a.test/two.jpg",
		}

		classification := Classify(report, "", false)
		assert.Equal(t, DisplayThumbnailGrid, classification.Display)
		assert.Len(t, classification.Files, 2)
	})

	t.Run("embedded viewer only when enabled", func(t *testing.T) {
		report := models.Report{
			"userId":    "user-1",
			"reportDoc": "https://a.test/one.jpg",
		}

		assert.Equal(t, DisplayEmbeddedViewer, Classify(report, "", true).Display)
		assert.Equal(t, DisplayThumbnailGrid, Classify(report, "", false).Display)
	})

	t.Run("parsed data without files renders the structured report", func(t *testing.T) {
		classification := Classify(dcReport(), "", false)
		assert.Equal(t, DisplayDiagnosticReport, classification.Display)
		assert.True(t, classification.HasParsedData)
	})

	t.Run("DC share without parsed data still renders the structured report", func(t *testing.T) {
		report := models.Report{"isDCReport": true}
		assert.Equal(t, DisplayDiagnosticReport, Classify(report, "", false).Display)
	})

	t.Run("user shared with files renders thumbnails not the structured report", func(t *testing.T) {
		report := models.Report{
			"isOmeraldSharedReport": true,
			"userId":                "user-1",
			"reportData":            "https://a.test/shared.jpg",
		}

		classification := Classify(report, "", false)
		assert.Equal(t, DisplayThumbnailGrid, classification.Display)
	})

	t.Run("pdf fallback when only a pdf hint remains", func(t *testing.T) {
		// reportData with an empty url field resolves no files, but the pdf
		// hint still points somewhere.
		report := models.Report{
			"reportData": map[string]interface{}{
				"pdfUrl": " ",
				"notes":  "legacy record",
			},
			"fileType": "pdf",
		}

		classification := Classify(report, "", false)
		assert.Equal(t, DisplayPDFFallback, classification.Display)
		assert.Empty(t, classification.Files)
	})

	t.Run("no sources is the valid no-files state", func(t *testing.T) {
		report := models.Report{"userId": "user-1"}

		classification := Classify(report, "", false)
		assert.Equal(t, DisplayNoFiles, classification.Display)
		assert.Empty(t, classification.Files)
	})
}

func TestClassify_ShareStatus(t *testing.T) {
	report := models.Report{
		"status": "pending",
		"shareDetail": []interface{}{
			map[string]interface{}{"phoneNumber": "111", "status": "accepted"},
			map[string]interface{}{"phoneNumber": "222", "status": "rejected"},
		},
	}

	t.Run("viewer-specific entry wins", func(t *testing.T) {
		assert.Equal(t, "accepted", Classify(report, "111", false).ShareStatus)
		assert.Equal(t, "rejected", Classify(report, "222", false).ShareStatus)
	})

	t.Run("unmatched viewer falls back to record status", func(t *testing.T) {
		assert.Equal(t, "pending", Classify(report, "333", false).ShareStatus)
	})

	t.Run("no viewer phone falls back to record status", func(t *testing.T) {
		assert.Equal(t, "pending", Classify(report, "", false).ShareStatus)
	})

	t.Run("sharedReportDetails is honored as the legacy field name", func(t *testing.T) {
		legacy := models.Report{
			"status": "pending",
			"sharedReportDetails": []interface{}{
				map[string]interface{}{"phoneNumber": "111", "status": "accepted"},
			},
		}

		assert.Equal(t, "accepted", Classify(legacy, "111", false).ShareStatus)
	})
}

func TestClassify_NilReport(t *testing.T) {
	classification := Classify(nil, "", false)
	assert.Equal(t, OriginUnknown, classification.Origin)
	assert.Equal(t, DisplayNoFiles, classification.Display)
	assert.Empty(t, classification.Files)
}
