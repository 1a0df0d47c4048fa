package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Report messages
	ReportCreatedSuccess  = "report created successfully"
	ReportUpdatedSuccess  = "report updated successfully"
	ReportDeletedSuccess  = "report deleted successfully"
	ReportGetSuccess      = "get report successfully"
	ReportListSuccess     = "get reports successfully"
	ReportViewPlanSuccess = "get report view successfully"
	ReportAcceptedSuccess = "shared report accepted successfully"
	ReportRejectedSuccess = "shared report rejected successfully"

	// Diagnostic center messages
	DCDetailsGetSuccess          = "get diagnostic center details successfully"
	BranchDetailsGetSuccess      = "get branch details successfully"
	PathologistDetailsGetSuccess = "get pathologist details successfully"

	// File messages
	FileUploadedSuccess = "file uploaded successfully"
	SignedURLGetSuccess = "get signed url successfully"

	// Analytics messages
	AnalyticsBMISuccess             = "get bmi series successfully"
	AnalyticsReportsPerMonthSuccess = "get reports per month successfully"
	AnalyticsConditionsSuccess      = "get condition frequency successfully"
)
