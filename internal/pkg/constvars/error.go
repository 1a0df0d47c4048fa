package constvars

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientReportNotFound                = "report not found"
	ErrClientProfileNotFound               = "profile not found"
	ErrClientPathologistNotFound           = "pathologist not found"
	ErrClientDiagnosticCenterNotFound      = "diagnostic center not found"
	ErrClientBranchNotFound                = "branch not found"
	ErrClientMissingPathologistIdentifier  = "either pathologistId or branchId is required"
	ErrClientFileNotFound                  = "file not found"
	ErrClientFileAccessDenied              = "access to file denied"
	ErrClientReportNotPending              = "report share is no longer pending"
)

const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevDecodeResponse           = "failed to decode response body"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"

	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthInvalidSession        = "invalid session"

	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"

	ErrDevRedisSet       = "failed to set value on redis"
	ErrDevRedisGetNoData = "failed to get data with key: %s on redis"
	ErrDevRedisDelete    = "failed to delete value on redis"

	ErrDevMinioFailedToCreateObject  = "failed to create object on bucket: %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object: %s"
	ErrDevStorageKeyExtraction       = "failed to extract object key from url"

	ErrDevDCUpstreamRequestFailed = "diagnostic center upstream request failed"
	ErrDevDCUpstreamNotFound      = "diagnostic center upstream resource not found"

	ErrDevRabbitMQPublish = "failed to publish message to rabbitmq"

	ErrDevReportNotFound     = "report document not found"
	ErrDevProfileNotFound    = "profile document not found"
	ErrDevReportNotPending   = "report share status is not pending"
	ErrDevURLParamValidation = "failed to validate URL param: %s"
)
