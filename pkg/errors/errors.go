package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeStorage  ErrorCode = "STORAGE_ERROR"
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
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

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with an AppError
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound reports that no record matched a lookup.
func NotFound(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

// Storage wraps a failure returned by the database engine.
func Storage(message string, err error) *AppError {
	return Wrap(ErrCodeStorage, message, err)
}

// CodeOf returns the code of the first AppError in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsNotFound checks if error is NotFound
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeNotFound
}

// IsStorage checks if error is a storage failure
func IsStorage(err error) bool {
	return CodeOf(err) == ErrCodeStorage
}
