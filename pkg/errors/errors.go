// Package errors is the transport-facing error model: a stable code, a
// message safe to show to clients and optional details.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"ecommerce/domain/shared"
)

type ErrorCode string

const (
	CodeInternal        ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest      ErrorCode = "BAD_REQUEST"
	CodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	CodeForbidden       ErrorCode = "FORBIDDEN"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeConflict        ErrorCode = "CONFLICT"
	CodeTooManyRequest  ErrorCode = "TOO_MANY_REQUESTS"
	CodeValidation      ErrorCode = "VALIDATION_ERROR"
	CodeBusinessRule    ErrorCode = "BUSINESS_RULE"
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidation, CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeBusinessRule:
		return http.StatusUnprocessableEntity
	case CodeTooManyRequest:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *AppError      { return New(CodeBadRequest, message) }
func Internal(message string) *AppError        { return New(CodeInternal, message) }
func TooManyRequests(message string) *AppError { return New(CodeTooManyRequest, message) }

func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// FromError converts anything returned by the application layer. Domain
// errors keep their message; anything else becomes an opaque internal error.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return FromDomainError(domainErr)
	}
	return Wrap(err, CodeInternal, "internal server error")
}

// FromDomainError maps the domain error kinds onto transport codes.
// Validation errors carry their violations as details.
func FromDomainError(err *shared.DomainError) *AppError {
	appErr := Wrap(err, CodeInternal, err.Message)
	switch {
	case errors.Is(err, shared.ErrValidation):
		appErr.Code = CodeValidation
		appErr.Details = err.Violations()
	case errors.Is(err, shared.ErrBusinessRule):
		appErr.Code = CodeBusinessRule
	case errors.Is(err, shared.ErrNotFound):
		appErr.Code = CodeNotFound
	case errors.Is(err, shared.ErrConflict):
		appErr.Code = CodeConflict
	case errors.Is(err, shared.ErrArgument):
		appErr.Code = CodeInvalidArgument
	case errors.Is(err, shared.ErrUnauthorized):
		appErr.Code = CodeUnauthorized
	case errors.Is(err, shared.ErrForbidden):
		appErr.Code = CodeForbidden
	default:
		appErr.Message = "internal server error"
	}
	return appErr
}
