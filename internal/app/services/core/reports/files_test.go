package reports

import (
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFiles(t *testing.T) {
	t.Run("nil report yields empty slice", func(t *testing.T) {
		files := ResolveFiles(nil)
		assert.NotNil(t, files)
		assert.Empty(t, files)
	})

	t.Run("reportDoc comma list wins over everything", func(t *testing.T) {
		report := models.Report{
			"reportDoc": "https://a.test/one.pdf, https://a.test/two.jpg",
			"reportUrl": "https://a.test/ignored.pdf",
		}

		files := ResolveFiles(report)

		assert.Equal(t, []string{"https://a.test/one.pdf", "https://a.test/two.jpg"}, files)
	})

	t.Run("reportDoc array form", func(t *testing.T) {
		report := models.Report{
			"reportDoc": []interface{}{"https://a.test/one.pdf", " ", "https://a.test/two.jpg"},
		}

		files := ResolveFiles(report)

		assert.Equal(t, []string{"https://a.test/one.pdf", "https://a.test/two.jpg"}, files)
	})

	t.Run("reportUrl used when reportDoc empty", func(t *testing.T) {
		report := models.Report{
			"reportDoc": "",
			"reportUrl": "https://a.test/scan.png",
		}

		assert.Equal(t, []string{"https://a.test/scan.png"}, ResolveFiles(report))
	})

	t.Run("reportData url fields", func(t *testing.T) {
		report := models.Report{
			"reportData": map[string]interface{}{
				"url":    "https://a.test/main.pdf",
				"pdfUrl": "https://a.test/main.pdf",
			},
		}

		files := ResolveFiles(report)

		assert.Equal(t, []string{"https://a.test/main.pdf"}, files, "duplicate URLs should collapse")
	})

	t.Run("reportData url with comma is not split", func(t *testing.T) {
		report := models.Report{
			"reportData": map[string]interface{}{
				"url": "https://a.test/x?marker=a,b",
			},
		}

		assert.Equal(t, []string{"https://a.test/x?marker=a,b"}, ResolveFiles(report))
	})

	t.Run("shared report with string reportData URL", func(t *testing.T) {
		report := models.Report{
			"isOmeraldSharedReport": true,
			"reportData":            "https://a.test/shared.pdf",
		}

		assert.Equal(t, []string{"https://a.test/shared.pdf"}, ResolveFiles(report))
	})

	t.Run("shared report with JSON reportData", func(t *testing.T) {
		report := models.Report{
			"isSharedReport": true,
			"reportData":     `{"url":"https://a.test/u.pdf","files":["https://a.test/f1.jpg",{"directUrl":"https://a.test/f2.jpg"}]}`,
		}

		files := ResolveFiles(report)

		assert.Equal(t, []string{
			"https://a.test/u.pdf",
			"https://a.test/f1.jpg",
			"https://a.test/f2.jpg",
		}, files)
	})

	t.Run("malformed shared JSON falls through to components", func(t *testing.T) {
		report := models.Report{
			"isSharedReport": true,
			"reportData":     `{"url": broken`,
			"parsedData": map[string]interface{}{
				"components": []interface{}{
					map[string]interface{}{"images": []interface{}{"https://a.test/c1.png"}},
				},
			},
		}

		assert.Equal(t, []string{"https://a.test/c1.png"}, ResolveFiles(report))
	})

	t.Run("component images flattened in order", func(t *testing.T) {
		report := models.Report{
			"parsedData": map[string]interface{}{
				"components": []interface{}{
					map[string]interface{}{"images": []interface{}{"https://a.test/1.png", "https://a.test/2.png"}},
					map[string]interface{}{"images": []interface{}{"https://a.test/3.png"}},
				},
			},
		}

		assert.Equal(t, []string{
			"https://a.test/1.png",
			"https://a.test/2.png",
			"https://a.test/3.png",
		}, ResolveFiles(report))
	})

	t.Run("no sources yields empty slice", func(t *testing.T) {
		report := models.Report{"name": "empty"}
		assert.Empty(t, ResolveFiles(report))
	})
}

func TestClassifyFileType(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		hint     string
		expected string
	}{
		{"hint pdf wins", "https://a.test/file.jpg", "pdf", constvars.FileTypePDF},
		{"hint image wins", "https://a.test/file.pdf", "image", constvars.FileTypeImage},
		{"pdf extension", "https://a.test/report.PDF", "", constvars.FileTypePDF},
		{"image extension", "https://a.test/scan.jpeg", "", constvars.FileTypeImage},
		{"heic extension", "https://a.test/photo.heic", "", constvars.FileTypeImage},
		{"extension before query", "https://a.test/scan.png?X-Amz-Signature=abc", "", constvars.FileTypeImage},
		{"content type in query", "https://a.test/obj?response-content-type=application%2Fpdf", "", constvars.FileTypePDF},
		{"image content type in query", "https://a.test/obj?response-content-type=image%2Fjpeg", "", constvars.FileTypeImage},
		{"pdf substring", "https://a.test/documents/124", "", constvars.FileTypePDF},
		{"photo substring", "https://a.test/photos/124", "", constvars.FileTypeImage},
		{"unknown", "https://a.test/blob/124", "", constvars.FileTypeUnknown},
		{"empty url", "", "", constvars.FileTypeUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyFileType(tc.url, tc.hint))
		})
	}
}
