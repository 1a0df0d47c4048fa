package reports

import (
	"omerald-service/internal/app/models"
	"omerald-service/internal/pkg/constvars"
	"omerald-service/internal/pkg/utils"
	"strings"

	"github.com/goccy/go-json"
)

// ResolveFiles extracts the ordered, de-duplicated list of attachment URLs
// from a report, trying the historical storage locations in strict priority
// order and stopping at the first one that yields anything:
//
//  1. reportDoc — comma-joined string or array
//  2. reportUrl — likewise
//  3. reportData url / pdfUrl / imageUrl
//  4. for user-shared records, reportData as a direct URL string or as a
//     JSON payload holding url / directUrl / files[]
//  5. parsedData component images, flattened
//
// An empty result is a valid terminal state; the classifier turns it into
// the "No Files Available" placeholder.
func ResolveFiles(report models.Report) []string {
	if report == nil {
		return []string{}
	}

	if files := urlsFromValue(report["reportDoc"]); len(files) > 0 {
		return dedupe(files)
	}
	if files := urlsFromValue(report["reportUrl"]); len(files) > 0 {
		return dedupe(files)
	}

	if reportData := report.Map("reportData"); reportData != nil {
		files := []string{}
		for _, key := range []string{"url", "pdfUrl", "imageUrl"} {
			if url, ok := reportData[key].(string); ok {
				if trimmed := strings.TrimSpace(url); trimmed != "" {
					files = append(files, trimmed)
				}
			}
		}
		if len(files) > 0 {
			return dedupe(files)
		}
	}

	if report.Bool("isOmeraldSharedReport") || report.Bool("isSharedReport") {
		if files := urlsFromSharedReportData(report["reportData"]); len(files) > 0 {
			return dedupe(files)
		}
	}

	if files := urlsFromComponents(report); len(files) > 0 {
		return dedupe(files)
	}

	return []string{}
}

// urlsFromValue reads a file location that may be a comma-joined string or
// an array of strings.
func urlsFromValue(value interface{}) []string {
	switch v := value.(type) {
	case string:
		return utils.SplitAndTrim(v)
	case []interface{}:
		files := []string{}
		for _, entry := range v {
			if url, ok := entry.(string); ok {
				if trimmed := strings.TrimSpace(url); trimmed != "" {
					files = append(files, trimmed)
				}
			}
		}
		return files
	case []string:
		files := []string{}
		for _, url := range v {
			if trimmed := strings.TrimSpace(url); trimmed != "" {
				files = append(files, trimmed)
			}
		}
		return files
	default:
		return nil
	}
}

// urlsFromSharedReportData handles user-shared records where reportData is
// a raw URL string, or a JSON document (already decoded or still a string)
// with url / directUrl / files[] entries. Malformed JSON is skipped
// silently; the caller falls through to the next source.
func urlsFromSharedReportData(value interface{}) []string {
	var payload map[string]interface{}

	switch v := value.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		if !strings.HasPrefix(trimmed, "{") {
			return []string{trimmed}
		}
		if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
			return nil
		}
	case map[string]interface{}:
		payload = v
	default:
		return nil
	}

	files := []string{}
	for _, key := range []string{"url", "directUrl"} {
		if url, ok := payload[key].(string); ok {
			if trimmed := strings.TrimSpace(url); trimmed != "" {
				files = append(files, trimmed)
			}
		}
	}

	if entries, ok := payload["files"].([]interface{}); ok {
		for _, entry := range entries {
			switch file := entry.(type) {
			case string:
				if trimmed := strings.TrimSpace(file); trimmed != "" {
					files = append(files, trimmed)
				}
			case map[string]interface{}:
				for _, key := range []string{"url", "directUrl"} {
					if url, ok := file[key].(string); ok {
						if trimmed := strings.TrimSpace(url); trimmed != "" {
							files = append(files, trimmed)
							break
						}
					}
				}
			}
		}
	}

	return files
}

// urlsFromComponents flattens parsedData.components[].images[] as the last
// resort file source.
func urlsFromComponents(report models.Report) []string {
	parsed := report.ParsedData()
	if parsed == nil {
		// Legacy top-level location, for records that never went through
		// shape normalization.
		parsed, _ = report["parsedData"].(map[string]interface{})
	}
	if parsed == nil {
		return nil
	}

	components, _ := parsed["components"].([]interface{})
	files := []string{}
	for _, entry := range components {
		component, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		images, _ := component["images"].([]interface{})
		for _, image := range images {
			if url, ok := image.(string); ok {
				if trimmed := strings.TrimSpace(url); trimmed != "" {
					files = append(files, trimmed)
				}
			}
		}
	}
	return files
}

func dedupe(files []string) []string {
	seen := make(map[string]bool, len(files))
	result := make([]string, 0, len(files))
	for _, file := range files {
		if !seen[file] {
			seen[file] = true
			result = append(result, file)
		}
	}
	return result
}

// ClassifyFileType guesses a file's MIME-ish type from the report-level
// fileType hint, the URL extension, content-type hints embedded in signed
// URL query strings, and finally loose substring heuristics.
func ClassifyFileType(url, hint string) string {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case constvars.FileTypePDF:
		return constvars.FileTypePDF
	case constvars.FileTypeImage:
		return constvars.FileTypeImage
	}

	lowered := strings.ToLower(strings.TrimSpace(url))
	if lowered == "" {
		return constvars.FileTypeUnknown
	}

	path := lowered
	query := ""
	if idx := strings.Index(lowered, "?"); idx >= 0 {
		path = lowered[:idx]
		query = lowered[idx+1:]
	}

	if strings.HasSuffix(path, ".pdf") {
		return constvars.FileTypePDF
	}
	for _, ext := range strings.Split(constvars.ImageFileExtensions, ",") {
		if strings.HasSuffix(path, ext) {
			return constvars.FileTypeImage
		}
	}

	// Pre-signed cloud storage URLs carry the content type in the query.
	if strings.Contains(query, "content-type=application/pdf") || strings.Contains(query, "content-type=application%2fpdf") {
		return constvars.FileTypePDF
	}
	if strings.Contains(query, "content-type=image/") || strings.Contains(query, "content-type=image%2f") {
		return constvars.FileTypeImage
	}

	if strings.Contains(lowered, "pdf") || strings.Contains(lowered, "document") {
		return constvars.FileTypePDF
	}
	if strings.Contains(lowered, "image") || strings.Contains(lowered, "photo") || strings.Contains(lowered, "picture") {
		return constvars.FileTypeImage
	}

	return constvars.FileTypeUnknown
}
