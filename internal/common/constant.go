package common

const (
	// DefaultPageSize is used when a list request does not set page_size.
	DefaultPageSize = 50
	// MaxPageSize caps the number of users returned by a single list call.
	MaxPageSize = 50

	// RequestIDHeaderName is the metadata key carrying the caller's request id.
	RequestIDHeaderName = "x-request-id"

	// StatusClientClosedRequest is the non-standard HTTP status logged when
	// the client went away before the response was written.
	StatusClientClosedRequest = 499
)
