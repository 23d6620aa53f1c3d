// Package census keeps an append-only roll of household registrations.
package census

import (
	"errors"
	"time"
)

// Store persists census entries.
// Implementations must be safe for concurrent use.
type Store interface {
	// Record appends an entry.
	// Returns ErrDuplicateEntry if (RunID, Sequence) was already recorded.
	Record(e Entry) error

	// List returns all entries for a run, ordered by sequence.
	// Returns an empty slice (not error) if the run has no entries.
	List(runID string) ([]Entry, error)

	// Close releases any resources (connections, files).
	Close() error
}

// Entry records one person joining a household.
type Entry struct {
	RunID     string
	Sequence  int
	PersonID  string
	Name      string
	Timestamp time.Time
}

// Sentinel errors for census operations.
var (
	// ErrDuplicateEntry indicates the (run, sequence) pair already exists.
	ErrDuplicateEntry = errors.New("census entry already recorded")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("census store closed")
)

func stamp(e Entry) Entry {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	return e
}
