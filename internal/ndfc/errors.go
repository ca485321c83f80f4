package ndfc

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no network matched the requested display name.
// Use errors.Is against this sentinel; errors.As against *NotFoundError
// exposes the names that were available.
var ErrNotFound = errors.New("network not found")

// AuthError reports a rejected login, a login response without a token, or an
// API call attempted before Login.
type AuthError struct {
	Status int
	Reason string
}

func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("authentication failed: %s (status %d)", e.Reason, e.Status)
	}
	return "authentication failed: " + e.Reason
}

// APIError reports a non-2xx response from the controller on an authenticated
// call.
type APIError struct {
	Op     string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: controller returned status %d: %s", e.Op, e.Status, e.Body)
	}
	return fmt.Sprintf("%s: controller returned status %d", e.Op, e.Status)
}

// NotFoundError carries the display name that had no match and the names the
// controller did report, for the "available networks" listing.
type NotFoundError struct {
	DisplayName string
	Available   []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no network with display name %q", e.DisplayName)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ParseError reports a response body that was not the expected JSON shape.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }
