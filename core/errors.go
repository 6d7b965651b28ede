package core

import (
	"errors"
)

// ErrNotFound is a sentinel error for "not found" cases
var ErrNotFound = errors.New("not found")

// ErrUnauthorized is a sentinel error for failed credential checks
var ErrUnauthorized = errors.New("unauthorized")

// IsNotFoundError checks if an error is a "not found" error
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}

// IsUnauthorizedError checks if an error is an authorization failure
func IsUnauthorizedError(err error) bool {
	return err != nil && errors.Is(err, ErrUnauthorized)
}
