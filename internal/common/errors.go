// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Ingestion errors.
	ErrSheetNotFound  = errors.New("sheet not found")
	ErrHeaderNotFound = errors.New("header row not found")
	ErrEmptySheet     = errors.New("sheet contains no data rows")

	// Analysis errors.
	ErrNoAds      = errors.New("no ads to analyze")
	ErrNoVerdicts = errors.New("no verdicts produced")

	// Report errors.
	ErrRendererUnavailable = errors.New("pdf renderer unavailable")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
