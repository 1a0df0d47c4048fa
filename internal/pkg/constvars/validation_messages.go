package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"numeric":          "must be a number",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lte":              "must be less than or equal to %s",
	"url":              "must be a valid URL",
	"uuid":             "must be a valid UUID",
	"required_without": "is required when %s is not present",
	"object_id":        "must be a valid object id",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"gt":               true,
	"gte":              true,
	"lte":              true,
	"oneof":            true,
	"required_without": true,
}
