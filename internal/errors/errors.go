// Package errors provides custom error types for canister calls.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrClosed          = errors.New("agent is closed")
	ErrRejected        = errors.New("call rejected")
	ErrInvalidResponse = errors.New("invalid response format")
	ErrNoReply         = errors.New("no value in reply")
	ErrNotFound        = errors.New("element not found")
)

// RejectError is returned when the canister rejects a call.
type RejectError struct {
	Code    int
	Message string
	Method  string
}

func (e *RejectError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("call to %s rejected (code %d)", e.Method, e.Code)
	}
	return fmt.Sprintf("call to %s rejected (code %d): %s", e.Method, e.Code, e.Message)
}

// Is allows comparison with sentinel errors
func (e *RejectError) Is(target error) bool {
	if target == ErrRejected {
		return true
	}
	_, ok := target.(*RejectError)
	return ok
}

// NewRejectError creates a new RejectError
func NewRejectError(method string, code int, message string) *RejectError {
	return &RejectError{Method: method, Code: code, Message: message}
}

// APIError represents a non-2xx answer from the replica endpoint
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// WithBody attaches a truncated response body for diagnostics
func (e *APIError) WithBody(body string) *APIError {
	const maxBody = 512
	if len(body) > maxBody {
		body = body[:maxBody] + "..."
	}
	e.Body = body
	return e
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// NetworkError wraps a transport failure
type NetworkError struct {
	Op       string
	Endpoint string
	Cause    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s at %s: %v", e.Op, e.Endpoint, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(op, endpoint string, cause error) *NetworkError {
	return &NetworkError{Op: op, Endpoint: endpoint, Cause: cause}
}

// ParseError represents a response parsing error
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse error: %s", e.Message)
	}
	return fmt.Sprintf("parse error at %q: %s", e.Path, e.Message)
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}

// IsRejected reports whether err is, or wraps, a canister rejection
func IsRejected(err error) bool {
	return errors.Is(err, ErrRejected)
}

// IsNetworkError reports whether err is, or wraps, a transport failure
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
