package completion

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Common completion error types
var (
	ErrAPIKeyRequired   = errors.New("api key is required")
	ErrEmptyCompletion  = errors.New("completion returned no content")
	ErrInvalidRequest   = errors.New("invalid completion request")
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// ErrorKind classifies a failed completion call
type ErrorKind string

const (
	KindAuth        ErrorKind = "auth"
	KindNetwork     ErrorKind = "network"
	KindRateLimited ErrorKind = "rate_limited"
	KindOther       ErrorKind = "other"
)

// Error represents a completion failure with additional context
type Error struct {
	Kind       ErrorKind
	StatusCode int    // HTTP status from the service, 0 if none was received
	Message    string // Detail reported by the service or the client
	Err        error  // Underlying error
}

func (e *Error) Error() string {
	detail := e.Message
	switch {
	case detail == "" && e.Err != nil:
		detail = e.Err.Error()
	case e.StatusCode == 0 && e.Err != nil:
		detail = detail + ": " + e.Err.Error()
	}
	if detail == "" {
		detail = "completion request failed"
	}

	if e.StatusCode != 0 {
		return fmt.Sprintf("completion API error (status %d): %s", e.StatusCode, detail)
	}
	return detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error
func NewError(kind ErrorKind, statusCode int, message string, err error) *Error {
	return &Error{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// KindForStatus maps an HTTP status code from the service to an ErrorKind
func KindForStatus(statusCode int) ErrorKind {
	switch statusCode {
	case 401, 403:
		return KindAuth
	case 429:
		return KindRateLimited
	default:
		return KindOther
	}
}

// KindOf returns the kind of a completion error. Errors that did not come
// from a completion client report KindOther.
func KindOf(err error) ErrorKind {
	var completionErr *Error
	if errors.As(err, &completionErr) {
		return completionErr.Kind
	}
	if isNetworkError(err) {
		return KindNetwork
	}
	return KindOther
}

// IsAuth returns true if the service rejected the credential
func IsAuth(err error) bool {
	return KindOf(err) == KindAuth
}

// IsRateLimited returns true if the service throttled the call
func IsRateLimited(err error) bool {
	return KindOf(err) == KindRateLimited
}

// IsNetwork returns true if the call failed before a response was received
func IsNetwork(err error) bool {
	return KindOf(err) == KindNetwork
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
