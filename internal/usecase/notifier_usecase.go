package usecase

import (
	"context"
	"fmt"

	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"
)

// RetryableError marks a failure the message queue should redeliver.
type RetryableError struct {
	err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *RetryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps err as retryable.
func NewRetryableError(err error) error {
	return &RetryableError{err: err}
}

// IsRetryable reports whether err should trigger redelivery.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}

// NotifierUsecase turns search events into push notifications.
type NotifierUsecase interface {
	// NotifySearchCompleted pushes a summary to every active device of the user.
	// Failures wrapped by NewRetryableError should be redelivered; others are dropped.
	NotifySearchCompleted(ctx context.Context, event *service.SearchCompletedEvent) error
}
