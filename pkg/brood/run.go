package brood

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/randalmurphal/brood/pkg/brood/observability"
)

// Run creates a person for each name, moves them all into a new household,
// gathers the household, and lets the first person boast through an observer
// taken before any registration.
//
// Example:
//
//	household, err := brood.Run(ctx, []string{"Bob", "Jeff", "Chad", "Stacy"})
func Run(ctx context.Context, names []string, opts ...Option) (*Household, error) {
	if len(names) == 0 {
		return nil, ErrNoNames
	}

	o := applyOptions(opts)
	if o.runID == "" {
		o.runID = uuid.New().String()
		opts = append(opts[:len(opts):len(opts)], WithRunID(o.runID))
	}

	done := observability.TimedOperation()
	observability.LogRunStart(o.logger, o.runID, len(names))

	ctx, span := o.spans.StartRunSpan(ctx, o.runID, len(names))
	household, err := run(ctx, names, opts)
	o.spans.EndSpanWithError(span, err)

	if err != nil {
		observability.LogRunError(o.logger, o.runID, err, done())
		return nil, err
	}
	observability.LogRunComplete(o.logger, o.runID, done(), household.Len())
	return household, nil
}

func run(ctx context.Context, names []string, opts []Option) (*Household, error) {
	people := make([]*Person, 0, len(names))
	for _, name := range names {
		p, err := NewPerson(ctx, name, opts...)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}

	first := Observe(people[0])

	household := NewHousehold(opts...)
	for _, p := range people {
		if _, err := household.Register(ctx, p); err != nil {
			return nil, err
		}
	}

	if err := household.Gather(ctx); err != nil {
		return nil, fmt.Errorf("gather: %w", err)
	}
	if err := first.Boast(); err != nil {
		return nil, fmt.Errorf("boast: %w", err)
	}
	return household, nil
}
