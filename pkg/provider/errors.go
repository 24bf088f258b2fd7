package provider

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorKind classifies a provider failure for retry decisions.
type ErrorKind string

const (
	KindNetworkError ErrorKind = "network_error"
	KindAuthError    ErrorKind = "auth_error"
	KindRateLimited  ErrorKind = "rate_limited"
	KindBadRequest   ErrorKind = "bad_request"
	KindServerError  ErrorKind = "server_error"
	KindDecodeError  ErrorKind = "decode_error"
)

// Error is a typed provider failure. RetryAfter is non-zero only for
// rate_limited errors that carried a Retry-After hint.
type Error struct {
	Provider   string
	Kind       ErrorKind
	Status     int
	RetryAfter time.Duration
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("provider %s: %s (HTTP %d): %s", e.Provider, e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("provider %s: %s: %s", e.Provider, e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransient reports whether the error kind warrants a retry.
func (e *Error) IsTransient() bool {
	switch e.Kind {
	case KindNetworkError, KindServerError, KindRateLimited:
		return true
	}
	return false
}

// classifyStatus maps an HTTP status code to an error kind.
func classifyStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuthError
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 400 && status < 500:
		return KindBadRequest
	case status >= 500:
		return KindServerError
	}
	return KindServerError
}

// retryAfterHint parses a Retry-After header value in seconds.
func retryAfterHint(h http.Header) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	var secs int
	if _, err := fmt.Sscanf(v, "%d", &secs); err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
