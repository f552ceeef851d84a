package domain

import (
	"errors"
	"fmt"
)

// NotFoundError represents a lookup, update or delete that matched nothing
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on any NotFoundError
func (e NotFoundError) Is(target error) bool {
	switch target.(type) {
	case NotFoundError, *NotFoundError:
		return true
	}
	return false
}

// InvalidIDError represents a caller-supplied identifier that is not an ObjectID
type InvalidIDError struct {
	Value string
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid id %q", e.Value)
}

// Is enables errors.Is matching on any InvalidIDError
func (e InvalidIDError) Is(target error) bool {
	switch target.(type) {
	case InvalidIDError, *InvalidIDError:
		return true
	}
	return false
}

var (
	// ErrNotFound is the sentinel for missing resources
	ErrNotFound = NotFoundError{}
	// ErrInvalidID is the sentinel for malformed identifiers
	ErrInvalidID = InvalidIDError{}
	// ErrInvalidInput marks missing parameters and bad request bodies
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidInput wraps msg so that it matches ErrInvalidInput
func InvalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
