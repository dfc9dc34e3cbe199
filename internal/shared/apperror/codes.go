package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput       = "VALIDATION_ERROR"
	CodeMissingAuthContext = "MISSING_AUTH_CONTEXT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidState       = "INVALID_TRANSITION"

	// Server errors (5xx)
	CodeInternalError         = "INTERNAL_ERROR"
	CodeDownstreamUnavailable = "DOWNSTREAM_UNAVAILABLE"
)
