package brood

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/randalmurphal/brood/pkg/brood/observability"
)

// Person is a named entity. The name is fixed at construction.
type Person struct {
	id        string
	name      string
	announcer *Announcer
	owner     atomic.Pointer[Household]
}

// NewPerson creates a person and announces the birth.
//
// The returned Person is owned by the caller until it is passed to
// Household.Register.
func NewPerson(ctx context.Context, name string, opts ...Option) (*Person, error) {
	o := applyOptions(opts)

	p := &Person{
		id:        uuid.New().String(),
		name:      name,
		announcer: o.announcer,
	}

	if err := p.announcer.Birth(name); err != nil {
		return nil, fmt.Errorf("birth of %s: %w", name, err)
	}
	observability.LogBirth(o.logger, p.id, name)
	o.metrics.RecordBirth(ctx)
	return p, nil
}

// Name returns the person's name.
func (p *Person) Name() string {
	return p.name
}

// ID returns the person's unique identifier.
func (p *Person) ID() string {
	return p.id
}

// Owned reports whether a household has taken ownership of the person.
func (p *Person) Owned() bool {
	return p.owner.Load() != nil
}

// String implements fmt.Stringer.
func (p *Person) String() string {
	return p.name
}
