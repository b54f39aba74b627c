package types

import (
	"fmt"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	ValidationError      ErrorCode = "VALIDATION_ERROR"
	Unauthorized         ErrorCode = "UNAUTHORIZED"
	NotFound             ErrorCode = "NOT_FOUND"
	WrongOwner           ErrorCode = "WRONG_OWNER"
	CoolingPeriodActive  ErrorCode = "COOLING_PERIOD_ACTIVE"
	ReentrantCall        ErrorCode = "REENTRANT_CALL"
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
)

// Error carries the HTTP status a failed ledger operation maps to,
// an application-level error code and the underlying cause.
type Error struct {
	StatusCode int
	ErrorCode  ErrorCode
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.ErrorCode.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, fmt.Errorf("%s", msg))
}

func NewValidationFailedError(err error) *Error {
	return NewError(http.StatusBadRequest, ValidationError, err)
}

func NewInternalServiceError(err error) *Error {
	return NewError(http.StatusInternalServerError, InternalServiceError, err)
}
