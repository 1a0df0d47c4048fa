package requests

// CreateReportRequest carries a raw report record. The payload is kept
// schemaless on purpose; only the envelope fields are validated and the
// record itself goes through shape normalization on read.
type CreateReportRequest struct {
	Report map[string]interface{} `json:"report" validate:"required"`
}

type UpdateReportRequest struct {
	Report map[string]interface{} `json:"report" validate:"required"`
}
