package errors

// ErrorCode is a machine-readable application error code
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1003

	// Webhook / trigger
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 2000
	ErrorCode_INVALID_SIGNATURE ErrorCode = 2001

	// Meeting
	ErrorCode_MEETING_NOT_FOUND ErrorCode = 3000

	// Pipeline
	ErrorCode_PROCESSING_FAILED   ErrorCode = 4000
	ErrorCode_JOB_CREATION_FAILED ErrorCode = 4001

	// Integrations
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 5000
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5001
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_INVALID_SIGNATURE:          "INVALID_SIGNATURE",
	ErrorCode_MEETING_NOT_FOUND:          "MEETING_NOT_FOUND",
	ErrorCode_PROCESSING_FAILED:          "PROCESSING_FAILED",
	ErrorCode_JOB_CREATION_FAILED:        "JOB_CREATION_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
}

// String returns the name of the error code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
