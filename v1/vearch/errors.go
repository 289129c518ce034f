package vearch

import (
	"errors"
	"fmt"
)

// Common vearch errors
var (
	// ErrMissingBaseURL is returned when the client is built without a base URL.
	ErrMissingBaseURL = errors.New("vearch: base url is required")
)

// APIError is a non-success response from the Vearch cluster: either a
// non-2xx HTTP status, or a success status whose response envelope carries a
// non-success code.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is the Vearch response-envelope code, when one was present.
	Code int

	// Msg is the server-provided message, when one was present.
	Msg string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("vearch: api error (http=%d, code=%d): %s", e.StatusCode, e.Code, e.Msg)
	}
	return fmt.Sprintf("vearch: api error (http=%d, code=%d)", e.StatusCode, e.Code)
}

// IsAPIError checks if the error (or any error it wraps) is an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
