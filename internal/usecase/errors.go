package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// storeError marks a document store failure as a dependency outage while
// keeping the cause reachable through errors.Is.
func storeError(op, name string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrDependencyUnavailable, op, name, err)
}
