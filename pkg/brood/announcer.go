package brood

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Announcer writes the household's announcements to an output stream.
type Announcer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewAnnouncer returns an Announcer writing to w.
// A nil writer discards output.
func NewAnnouncer(w io.Writer) *Announcer {
	if w == nil {
		w = io.Discard
	}
	return &Announcer{w: w}
}

// DefaultAnnouncer returns an Announcer writing to standard output.
func DefaultAnnouncer() *Announcer {
	return NewAnnouncer(os.Stdout)
}

// Birth announces a newly created person.
func (a *Announcer) Birth(name string) error {
	return a.printf("A child is born! They say, \"Hey, I'm %s! :)\"\n", name)
}

// Gathering announces that every member now lives in the household.
// The message spans two lines.
func (a *Announcer) Gathering() error {
	return a.printf("And they all come together and say, \n\"And we all live inside of this vector!\"\n")
}

// Boast announces name through an observer that outlived the move into the household.
func (a *Announcer) Boast(name string) error {
	return a.printf("%s says, \"AND HEY, I'M STILL BOB! :)\"\n", name)
}

func (a *Announcer) printf(format string, args ...any) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := fmt.Fprintf(a.w, format, args...); err != nil {
		return fmt.Errorf("announce: %w", err)
	}
	return nil
}
