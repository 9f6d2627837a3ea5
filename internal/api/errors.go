package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrSessionExpired marks a 401 from any endpoint. Callers clear the
	// stored session and send the user back to login.
	ErrSessionExpired = errors.New("session expired, please login again")

	// ErrUnreachable marks a transport-level failure before any status code
	// was received.
	ErrUnreachable = errors.New("cannot reach the HRM server")
)

// APIError is any non-2xx response. Detail carries the backend's `detail`
// (or `message`) field when the error body was parseable JSON.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	text := http.StatusText(e.StatusCode)
	if e.Detail != "" {
		return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, text, e.Detail)
	}
	return fmt.Sprintf("HTTP %d %s", e.StatusCode, text)
}

// IsValidation reports whether the server rejected the payload (422).
func (e *APIError) IsValidation() bool {
	return e.StatusCode == http.StatusUnprocessableEntity
}

func checkID(id int) error {
	if id <= 0 {
		return fmt.Errorf("invalid id %d: must be a positive integer", id)
	}
	return nil
}
