// Package fault defines the error kinds shared by sakinah's content and
// persistence layers.
//
// Three kinds exist:
//   - ErrInvalidArgument: a caller broke a contract (empty collection, out of
//     range key). It should fail loudly at the call site.
//   - *UpstreamError: a remote collaborator (Quran API, prayer API, Gemini)
//     could not serve the request. Callers may retry.
//   - ErrCacheCorrupt: a cached value could not be decoded. It is healed
//     internally and never returned to callers of the daily picker.
package fault

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidArgument reports a programming-contract violation.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrCacheCorrupt reports a cache entry that failed to decode.
var ErrCacheCorrupt = errors.New("cache entry corrupt")

// UpstreamError wraps a failed call to a remote service.
type UpstreamError struct {
	Service string // e.g. "quran", "prayer", "gemini"
	Status  int    // HTTP status, 0 for transport failures
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s unavailable (status %d): %v", e.Service, e.Status, e.Err)
	}
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Retryable reports whether repeating the request may succeed.
// Transport failures, 429 and 5xx are retryable; other statuses are not.
func (e *UpstreamError) Retryable() bool {
	switch {
	case e.Status == 0:
		return true
	case e.Status == http.StatusTooManyRequests:
		return true
	case e.Status >= 500:
		return true
	}
	return false
}

// Upstream builds an UpstreamError.
func Upstream(service string, status int, err error) *UpstreamError {
	if err == nil {
		err = errors.New(http.StatusText(status))
	}
	return &UpstreamError{Service: service, Status: status, Err: err}
}

// IsUpstream reports whether err is (or wraps) an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// AsUpstream extracts the UpstreamError from err, if any.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// Invalid wraps ErrInvalidArgument with a description.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
