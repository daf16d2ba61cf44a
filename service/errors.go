package service

import "fmt"

type ErrorCode string

const (
	ErrorInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrorConfiguration ErrorCode = "CONFIGURATION_ERROR"
	ErrorPersistence   ErrorCode = "PERSISTENCE_ERROR"
	ErrorUpstream      ErrorCode = "UPSTREAM_ERROR"
	ErrorTimeout       ErrorCode = "TIMEOUT"
	ErrorNotFound      ErrorCode = "NOT_FOUND"
	ErrorConflict      ErrorCode = "CONFLICT"
)

// Error carries a stable code for the HTTP layer, a short machine-readable
// reason, and the wrapped cause.
type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("service: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("service: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}
