package responses

// ReportViewPlan is the full render decision for one report: what kind of
// report it is, which view the client should show, the resolved attachment
// files with access-ready URLs, and the evaluated lab parameters.
type ReportViewPlan struct {
	ReportID    string          `json:"reportId"`
	Origin      string          `json:"origin"`
	DisplayMode string          `json:"displayMode"`
	ShareStatus string          `json:"shareStatus,omitempty"`
	Files       []ReportFile    `json:"files"`
	Parameters  []ParameterView `json:"parameters,omitempty"`
}

// ReportFile is one resolved attachment. SignedURL is null when the URL
// could not be resolved; the client renders a retry affordance for it.
type ReportFile struct {
	URL       string  `json:"url"`
	FileType  string  `json:"fileType"`
	SignedURL *string `json:"signedUrl"`
}

type ParameterView struct {
	Name         string      `json:"name"`
	Value        interface{} `json:"value,omitempty"`
	Units        string      `json:"units,omitempty"`
	Status       string      `json:"status"`
	DisplayRange string      `json:"displayRange"`
	Color        string      `json:"color"`
}

type CreateReportResponse struct {
	ReportID string `json:"reportId"`
}

type ShareDecisionResponse struct {
	ReportID        string `json:"reportId"`
	Status          string `json:"status"`
	DerivedReportID string `json:"derivedReportId,omitempty"`
}
