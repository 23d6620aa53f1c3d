package brood

import (
	"bytes"
	"errors"
	"io"
	"log/slog"

	"github.com/randalmurphal/brood/pkg/brood/census"
)

// expectedOutput is what Run prints for the default four names.
const expectedOutput = "A child is born! They say, \"Hey, I'm Bob! :)\"\n" +
	"A child is born! They say, \"Hey, I'm Jeff! :)\"\n" +
	"A child is born! They say, \"Hey, I'm Chad! :)\"\n" +
	"A child is born! They say, \"Hey, I'm Stacy! :)\"\n" +
	"And they all come together and say, \n" +
	"\"And we all live inside of this vector!\"\n" +
	"Bob says, \"AND HEY, I'M STILL BOB! :)\"\n"

var defaultNames = []string{"Bob", "Jeff", "Chad", "Stacy"}

var errWrite = errors.New("write failed")

// failingWriter fails every write after the first ok writes.
type failingWriter struct {
	ok int
	n  int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	if w.n > w.ok {
		return 0, errWrite
	}
	return len(p), nil
}

// failingCensus rejects every Record call.
type failingCensus struct{ err error }

func (f failingCensus) Record(census.Entry) error { return f.err }
func (f failingCensus) List(string) ([]census.Entry, error) { return nil, f.err }
func (f failingCensus) Close() error { return nil }

// quietOptions returns options that write announcements into buf and drop logs.
func quietOptions(buf *bytes.Buffer) []Option {
	return []Option{
		WithAnnouncer(NewAnnouncer(buf)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
}
