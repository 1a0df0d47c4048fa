package models

// Report is a diagnostic report record as stored. Legacy writers used
// several historical names and shapes for the same logical field, so the
// record stays schemaless and every read goes through the accessor helpers
// below. Accessors never panic; a missing or differently shaped field reads
// as the zero value.
type Report map[string]interface{}

// Known field locations, in probe priority order.
var (
	ReportNameKeys = []string{"name", "testName"}
	ReportDateKeys = []string{"reportDate", "uploadDate", "uploadedAt"}
)

func (r Report) Str(key string) string {
	if r == nil {
		return ""
	}
	value, _ := r[key].(string)
	return value
}

// FirstStr folds over the given keys and returns the first non-empty string.
func (r Report) FirstStr(keys ...string) string {
	for _, key := range keys {
		if value := r.Str(key); value != "" {
			return value
		}
	}
	return ""
}

func (r Report) Bool(key string) bool {
	if r == nil {
		return false
	}
	value, _ := r[key].(bool)
	return value
}

func (r Report) Map(key string) map[string]interface{} {
	if r == nil {
		return nil
	}
	value, _ := r[key].(map[string]interface{})
	return value
}

func (r Report) Slice(key string) []interface{} {
	if r == nil {
		return nil
	}
	value, _ := r[key].([]interface{})
	return value
}

// Has reports whether the key is present with a non-nil, non-empty value.
// Empty maps and slices count as absent; legacy records carry plenty of
// `{}` placeholders.
func (r Report) Has(key string) bool {
	if r == nil {
		return false
	}
	value, ok := r[key]
	if !ok || value == nil {
		return false
	}
	switch v := value.(type) {
	case string:
		return v != ""
	case map[string]interface{}:
		return len(v) > 0
	case []interface{}:
		return len(v) > 0
	default:
		return true
	}
}

// Clone returns a shallow copy. Nested values stay shared with the source.
func (r Report) Clone() Report {
	if r == nil {
		return nil
	}
	clone := make(Report, len(r))
	for key, value := range r {
		clone[key] = value
	}
	return clone
}

// ReportData returns the canonical report data object. Valid only after the
// record went through NormalizeShape; before that the field may hold a raw
// URL string or be absent entirely.
func (r Report) ReportData() map[string]interface{} {
	return r.Map("reportData")
}

// ParsedData returns reportData.parsedData when it is an object.
func (r Report) ParsedData() map[string]interface{} {
	reportData := r.ReportData()
	if reportData == nil {
		return nil
	}
	parsed, _ := reportData["parsedData"].(map[string]interface{})
	return parsed
}

// Parameters returns the raw lab parameter entries under
// reportData.parsedData.parameters, or nil.
func (r Report) Parameters() []interface{} {
	parsed := r.ParsedData()
	if parsed == nil {
		return nil
	}
	parameters, _ := parsed["parameters"].([]interface{})
	return parameters
}

// OwnerID returns the record owner, probing userId then createdBy.
func (r Report) OwnerID() string {
	return r.FirstStr("userId", "createdBy")
}
