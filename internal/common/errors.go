// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Request validation errors.
	ErrEmptyDestinations = errors.New("destinations list is empty")
	ErrInvalidDuration   = errors.New("trip duration must be at least one day")
	ErrInvalidPassengers = errors.New("passenger count must be at least one")
	ErrInvalidPortion    = errors.New("business portion must be between 0 and 1")

	// Constraint errors.
	ErrInvalidConstraint = errors.New("constraint minimum exceeds maximum")
	ErrUnknownCategory   = errors.New("unknown budget category")

	// Allocation errors.
	ErrUnknownStrategy = errors.New("unknown optimization strategy")
	ErrInvalidDecimal  = errors.New("invalid decimal value")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Storage errors.
	ErrNotFound = errors.New("not found")
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

// IsValidation reports whether the error is a request precondition failure
// rather than an internal fault.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyDestinations) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrInvalidPassengers) ||
		errors.Is(err, ErrInvalidPortion) ||
		errors.Is(err, ErrInvalidConstraint) ||
		errors.Is(err, ErrUnknownCategory)
}
