package brood

import (
	"errors"
	"fmt"
)

// Sentinel errors for household membership.
var (
	// ErrNilPerson indicates Register was called with a nil person.
	ErrNilPerson = errors.New("person cannot be nil")

	// ErrAlreadyOwned indicates the person already belongs to a household.
	// Registration moves ownership, so the caller's value is spent afterwards.
	ErrAlreadyOwned = errors.New("person already owned by a household")

	// ErrInvalidHandle indicates a handle that does not refer to a member.
	ErrInvalidHandle = errors.New("invalid household handle")
)

// Sentinel errors for observers and runs.
var (
	// ErrObserverExpired indicates the observed person has been collected.
	ErrObserverExpired = errors.New("observed person no longer exists")

	// ErrNoNames indicates Run was called without any names.
	ErrNoNames = errors.New("at least one name is required")
)

// CensusError wraps a census store failure during registration.
type CensusError struct {
	// PersonID identifies the person whose registration failed.
	PersonID string
	// Name is the person's name.
	Name string
	// Err is the underlying store error.
	Err error
}

// Error implements the error interface.
func (e *CensusError) Error() string {
	return fmt.Sprintf("census record for %s (%s): %v", e.Name, e.PersonID, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *CensusError) Unwrap() error {
	return e.Err
}
