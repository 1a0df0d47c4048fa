package constvars

type ContextKey string

const (
	ContextSessionData ContextKey = "sessionData"
)

const (
	MongoCollectionReports  = "reports"
	MongoCollectionProfiles = "profiles"
)

const (
	URLParamReportID  = "reportID"
	URLParamProfileID = "profileID"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

// Report share lifecycle statuses.
const (
	ReportStatusPending  = "pending"
	ReportStatusAccepted = "accepted"
	ReportStatusRejected = "rejected"
)

// Share event types published to the notification queue.
const (
	ReportEventShared   = "report.shared"
	ReportEventAccepted = "report.accepted"
	ReportEventRejected = "report.rejected"
)

// Redis cache key prefixes and TTLs.
const (
	CacheKeyDCDetails          = "dc:details:%s"
	CacheKeyBranchDetails      = "dc:branch:%s"
	CacheKeyPathologistDetails = "dc:pathologist:%s"
	CacheKeySession            = "session:%s"
)

// File type classification.
const (
	FileTypePDF     = "pdf"
	FileTypeImage   = "image"
	FileTypeUnknown = "unknown"
)

// ImageFileExtensions is the comma-list of extensions treated as images by
// the report file resolver.
const ImageFileExtensions = ".jpg,.jpeg,.png,.gif,.bmp,.webp,.svg,.heic,.tif,.tiff"

// Query markers of already-signed storage URLs.
const (
	SignedURLMarkerAmzAlgorithm = "X-Amz-Algorithm"
	SignedURLMarkerAmzSignature = "X-Amz-Signature"
	SignedURLMarkerAccessKeyID  = "AWSAccessKeyId"
	SignedURLMarkerSignature    = "Signature"
)
