package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that the requested instance or row is absent.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that a heartbeat or request parameter does not match what is declared.
	ErrBadParameter = "bad_parameter"
	// ErrServiceUnavailable means that a collaborator (data store, restart service) refused or could not serve the call.
	ErrServiceUnavailable = "service_unavailable"
)

// MyError is the error type shared by the supervisor's services, adapters and HTTP handlers.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// NewInternalServerError wraps inner as internal_server_error unless inner already carries a code.
func NewInternalServerError(message string, inner error) *MyError {
	return wrapWithCode(ErrInternalServerError, message, inner)
}

// NewEntityNotFoundError wraps inner as entity_not_found unless inner already carries a code.
func NewEntityNotFoundError(message string, inner error) *MyError {
	return wrapWithCode(ErrEntityNotFound, message, inner)
}

// NewBadParameterError wraps inner as bad_parameter unless inner already carries a code.
func NewBadParameterError(message string, inner error) *MyError {
	return wrapWithCode(ErrBadParameter, message, inner)
}

// NewServiceUnavailableError wraps inner as service_unavailable unless inner already carries a code.
func NewServiceUnavailableError(message string, inner error) *MyError {
	return wrapWithCode(ErrServiceUnavailable, message, inner)
}

func wrapWithCode(code string, message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(code, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns the first *MyError in err's chain, or nil.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, or "" for foreign errors.
func ToMyErrorCode(err error) string {
	if myErr := ToMyError(err); myErr != nil {
		return myErr.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	return ToMyErrorCode(err) == code && code != ""
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsServiceUnavailableError(err error) bool {
	return IsMyError(err, ErrServiceUnavailable)
}
