package apperror

// Codes sent in the "code" field of error responses.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"
	CodePasswordMismatch = "PASSWORD_MISMATCH"
	CodeInternalError    = "INTERNAL_ERROR"
)
