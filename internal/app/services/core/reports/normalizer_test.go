package reports

import (
	"omerald-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeShape(t *testing.T) {
	t.Run("nil report stays nil", func(t *testing.T) {
		assert.Nil(t, NormalizeShape(nil))
	})

	t.Run("existing reportData is untouched", func(t *testing.T) {
		report := models.Report{
			"reportData": map[string]interface{}{"reportName": "CBC"},
			"parsedData": map[string]interface{}{"parameters": []interface{}{}},
		}

		normalized := NormalizeShape(report)

		assert.Equal(t, report["reportData"], normalized["reportData"], "reportData should keep its original value")
	})

	t.Run("string reportData is untouched", func(t *testing.T) {
		report := models.Report{
			"reportData": "https://example.com/report.pdf",
		}

		normalized := NormalizeShape(report)

		assert.Equal(t, "https://example.com/report.pdf", normalized["reportData"], "raw URL reportData should survive")
	})

	t.Run("synthesizes reportData from legacy fields", func(t *testing.T) {
		report := models.Report{
			"name":       "Lipid Profile",
			"reportDate": "2024-03-01",
			"parsedData": map[string]interface{}{"parameters": []interface{}{}},
		}

		normalized := NormalizeShape(report)

		reportData := normalized.ReportData()
		assert.NotNil(t, reportData, "reportData should be synthesized")
		assert.Equal(t, "Lipid Profile", reportData["reportName"])
		assert.Equal(t, "2024-03-01", reportData["reportDate"])
		assert.Equal(t, report["parsedData"], reportData["parsedData"])
	})

	t.Run("falls back to testName then default name", func(t *testing.T) {
		report := models.Report{
			"testName":   "Thyroid Panel",
			"parsedData": map[string]interface{}{},
		}
		assert.Equal(t, "Thyroid Panel", NormalizeShape(report).ReportData()["reportName"])

		report = models.Report{
			"parsedData": map[string]interface{}{},
		}
		assert.Equal(t, "Report", NormalizeShape(report).ReportData()["reportName"])
	})

	t.Run("prefers reportDate over uploadDate", func(t *testing.T) {
		report := models.Report{
			"reportDate": "2024-01-10",
			"uploadDate": "2024-01-12",
			"parsedData": map[string]interface{}{},
		}

		assert.Equal(t, "2024-01-10", NormalizeShape(report).ReportData()["reportDate"])
	})

	t.Run("uses uploadDate when reportDate is absent", func(t *testing.T) {
		report := models.Report{
			"uploadDate": "2024-01-12",
			"parsedData": map[string]interface{}{},
		}

		assert.Equal(t, "2024-01-12", NormalizeShape(report).ReportData()["reportDate"])
	})

	t.Run("no synthesis without object parsedData", func(t *testing.T) {
		report := models.Report{
			"name":       "X-Ray",
			"parsedData": []interface{}{"not-an-object"},
		}

		normalized := NormalizeShape(report)

		assert.Nil(t, normalized.ReportData(), "array parsedData should not trigger synthesis")
	})

	t.Run("source record is not mutated", func(t *testing.T) {
		report := models.Report{
			"name":       "CBC",
			"parsedData": map[string]interface{}{},
		}

		NormalizeShape(report)

		_, exists := report["reportData"]
		assert.False(t, exists, "normalization must not write into the source record")
	})
}
