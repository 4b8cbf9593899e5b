package error

// APIErrorCode defines error codes for request-level errors.
type APIErrorCode string

const (
	// ErrCodeRateLimited is returned when a client exceeds the request limit.
	ErrCodeRateLimited APIErrorCode = "API-020001"
)
