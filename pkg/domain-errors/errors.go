// Package domainerrors defines the error codes surfaced to API callers.
//
// Services return *Error values (optionally wrapped) so the transport layer can
// translate them into HTTP responses without inspecting messages:
//
//	return dErrors.New(dErrors.CodeInvalidParameters, "days must be a non-negative integer")
//	return dErrors.Wrap(err, dErrors.CodeInternal, "compute working date")
//
// Infrastructure facts (unavailable feeds, cache misses) live in pkg/platform/sentinel.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the stable, machine readable error identifier returned in the "error" field.
type Code string

const (
	// CodeInvalidParameters covers missing, non-numeric or negative inputs and unparseable dates.
	CodeInvalidParameters Code = "InvalidParameters"
	// CodeNotFound is returned for unknown routes.
	CodeNotFound Code = "NotFound"
	// CodeMethodNotAllowed is returned when a route exists for another verb.
	CodeMethodNotAllowed Code = "MethodNotAllowed"
	// CodeRateLimited is returned when a client exceeds its request rate.
	CodeRateLimited Code = "RateLimitExceeded"
	// CodeInternal covers unexpected failures during the computation.
	CodeInternal Code = "InternalComputationError"
)

// Error is a domain error carrying a Code and a caller-facing message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error without an underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// From extracts the domain error from err. Errors that are not domain errors
// are reported as CodeInternal with the original message.
func From(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return Wrap(err, CodeInternal, err.Error())
}

// HTTPStatus maps a code to its HTTP status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeInvalidParameters:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
