// Package errors provides custom error types for the quote sources.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrSourcesExhausted = errors.New("all quote sources failed")
	ErrInvalidResponse  = errors.New("invalid response format")
	ErrNoContent        = errors.New("no content in response")
	ErrRejected         = errors.New("quote rejected")
)

// APIError represents a non-success HTTP response from a quote endpoint
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// NetworkError represents a transport failure (DNS, TLS, timeout, cancellation)
type NetworkError struct {
	Endpoint string
	Cause    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error at %s: %v", e.Endpoint, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(endpoint string, cause error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Cause: cause}
}

// ParseError represents a response parsing error
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse error: %s (path %s)", e.Message, e.Path)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// NewParseError creates a new ParseError
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// ValidationError is returned when a fetched quote fails the acceptance pattern
type ValidationError struct {
	Source string
	Text   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("quote from %s rejected: %q", e.Source, truncate(e.Text, 40))
}

// Is allows comparison with sentinel errors
func (e *ValidationError) Is(target error) bool {
	if target == ErrRejected {
		return true
	}
	_, ok := target.(*ValidationError)
	return ok
}

// NewValidationError creates a new ValidationError
func NewValidationError(source, text string) *ValidationError {
	return &ValidationError{Source: source, Text: text}
}

// IsNetworkError reports whether err is (or wraps) a NetworkError
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	return errors.Is(err, ErrRejected)
}

// IsExhausted reports whether err signals that the local fallback was used
func IsExhausted(err error) bool {
	return errors.Is(err, ErrSourcesExhausted)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
