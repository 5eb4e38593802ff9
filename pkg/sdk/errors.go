package sdk

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the school API, carrying the
// human-readable message from the server's error envelope when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// AuthRejected reports whether the response signals that the presented
// credential is no longer valid. A 403 is a role check, not a credential
// rejection, and must never invalidate the session.
func (e *APIError) AuthRejected() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsAuthRejection reports whether err is an authentication rejection from the
// school API.
func IsAuthRejection(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.AuthRejected()
}

// IsAPIError unwraps err as an *APIError when the server produced a response;
// transport failures (unreachable server, timeouts) are not APIErrors.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
