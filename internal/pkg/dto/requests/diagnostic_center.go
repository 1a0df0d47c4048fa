package requests

type GetDCDetailsRequest struct {
	DCID string `json:"dcId" validate:"required"`
}

type GetBranchDetailsRequest struct {
	BranchID string `json:"branchId" validate:"required"`
}

// GetPathologistDetailsRequest resolves a pathologist either directly by ID
// or by scanning a branch's pathologists for a name match.
type GetPathologistDetailsRequest struct {
	PathologistID   string `json:"pathologistId,omitempty"`
	BranchID        string `json:"branchId,omitempty"`
	PathologistName string `json:"pathologistName,omitempty"`
}
