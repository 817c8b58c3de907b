package api

const (
	// Generic request/server errors
	CodeInvalidRequest   = "E_INVALID_REQUEST"    // bad or invalid request
	CodeNotFound         = "E_NOT_FOUND"          // no route matches the request path
	CodeMethodNotAllowed = "E_METHOD_NOT_ALLOWED" // the path exists but not for this method
	CodeRateLimited      = "E_RATE_LIMITED"       // rate limit exceeded
	CodeInternalError    = "E_INTERNAL_ERROR"     // internal server error

	// CORS errors
	CodeCORSOriginDisallowed = "E_CORS_ORIGIN_DISALLOWED" // preflight from an origin outside the allow-list
)
