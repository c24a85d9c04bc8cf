package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse marks a 2xx response whose body could not be decoded
// as an envelope. Distinguishable from transport failures and *Error via
// errors.Is.
var ErrMalformedResponse = errors.New("malformed response body")

// Error is an HTTP-level failure: the request reached the backend and was
// answered with a non-2xx status. Message carries the server-supplied
// envelope message when one was present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// StatusOf extracts the HTTP status from an error chain, if any.
func StatusOf(err error) (int, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status, true
	}
	return 0, false
}

func hasStatus(err error, status int) bool {
	got, ok := StatusOf(err)
	return ok && got == status
}

// IsNotFound reports whether err is an HTTP 404 from the backend.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsUnauthorized reports whether err is an HTTP 401 from the backend.
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is an HTTP 403 from the backend.
func IsForbidden(err error) bool { return hasStatus(err, http.StatusForbidden) }

// IsConflict reports whether err is an HTTP 409 from the backend.
func IsConflict(err error) bool { return hasStatus(err, http.StatusConflict) }

// IsAccessDenied groups the two authorization failures the role resolver
// downgrades silently.
func IsAccessDenied(err error) bool { return IsUnauthorized(err) || IsForbidden(err) }
