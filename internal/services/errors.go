package services

import (
	"context"
	"errors"

	"goa.design/clue/log"
	goa "goa.design/goa/v3/pkg"

	apperrors "fortiercars/pkg/errors"
)

const (
	// ErrNameNotFound names errors for records that do not exist.
	ErrNameNotFound = "not_found"
	// ErrNameInternal names storage and other unexpected failures.
	ErrNameInternal = "internal_error"
)

// NotFound creates a properly formatted not found error
func NotFound(message string) *goa.ServiceError {
	return goa.NewServiceError(errors.New(message), ErrNameNotFound, false, false, false)
}

// Internal logs the cause and returns a fault carrying only message, so storage details never
// reach the client.
func Internal(ctx context.Context, message string, cause error) *goa.ServiceError {
	log.Errorf(ctx, cause, "%s", message)
	return goa.NewServiceError(errors.New(message), ErrNameInternal, false, false, true)
}

// storageError maps a storage outcome to the service error for the calling operation.
func storageError(ctx context.Context, err error, notFound, failed string) error {
	if apperrors.IsNotFound(err) {
		return NotFound(notFound)
	}
	return Internal(ctx, failed, err)
}
