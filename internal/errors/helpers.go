package errors

import "errors"

// IsValidationError reports whether err is a caller-side input error.
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	var e *NetworkError
	return errors.As(err, &e)
}

// IsTimeoutError reports whether err is a deadline failure.
func IsTimeoutError(err error) bool {
	var e *TimeoutError
	return errors.As(err, &e)
}

// IsAPIError reports whether err is a non-2xx server response.
func IsAPIError(err error) bool {
	var e *APIError
	return errors.As(err, &e)
}

// IsParseError reports whether err is a schema violation.
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}

// IsStreamError reports whether err is an interrupted stream.
func IsStreamError(err error) bool {
	var e *StreamError
	return errors.As(err, &e)
}

// GetHTTPStatus extracts the HTTP status code from an APIError,
// or returns 0 when err carries none.
func GetHTTPStatus(err error) int {
	var e *APIError
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// GetEndpoint extracts the endpoint an error occurred against, if known.
func GetEndpoint(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Endpoint
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Endpoint
	}
	return ""
}

// GetResponseBody extracts the raw response body from an APIError, if any.
func GetResponseBody(err error) string {
	var e *APIError
	if errors.As(err, &e) {
		return e.Body
	}
	return ""
}
