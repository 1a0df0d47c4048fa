package models

// Denormalized display records fetched lazily from the upstream diagnostic
// center service when not embedded in the report record.

type DCDetails struct {
	CenterID    string `json:"centerId,omitempty"`
	CenterName  string `json:"centerName"`
	LogoURL     string `json:"logoUrl,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
}

type BranchDetails struct {
	BranchID      string `json:"branchId,omitempty"`
	BranchName    string `json:"branchName"`
	BranchAddress string `json:"branchAddress,omitempty"`
}

type PathologistDetails struct {
	PathologistID string `json:"pathologistId"`
	Name          string `json:"name"`
	Signature     string `json:"signature,omitempty"`
	Designation   string `json:"designation,omitempty"`
}
