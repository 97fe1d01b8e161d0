package ebay

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrTransport marks failures where no HTTP response was received.
var ErrTransport = errors.New("eBay transport error")

// APIError is a non-2xx response from an eBay REST endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("eBay API error (status %d): %s", e.StatusCode, e.Body)
}

// Transient reports whether the request may succeed if repeated.
func (e *APIError) Transient() bool {
	return e.StatusCode >= http.StatusInternalServerError ||
		e.StatusCode == http.StatusTooManyRequests
}

// IsTransient reports whether err is a 5xx/429 response or a transport
// failure. Rate-limiter refusals and client errors are not transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Transient()
	}
	return errors.Is(err, ErrTransport)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
