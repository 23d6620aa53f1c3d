/*
Package brood creates named people and moves them into a household that
owns them exclusively, announcing each step.

# Overview

A Person is born with an immutable name and announces itself. Register
moves a Person into a Household: the household becomes the sole owner and
keeps members in registration order. An Observer is a non-owning reference
to a Person that keeps working after the move.

# Basic Usage

	ctx := context.Background()

	bob, _ := brood.NewPerson(ctx, "Bob")
	watcher := brood.Observe(bob)

	household := brood.NewHousehold()
	if _, err := household.Register(ctx, bob); err != nil {
	    log.Fatal(err)
	}

	_ = household.Gather(ctx)
	_ = watcher.Boast()

Run does all of the above for a list of names.

# Output

With the default names the announcements are:

	A child is born! They say, "Hey, I'm Bob! :)"
	A child is born! They say, "Hey, I'm Jeff! :)"
	A child is born! They say, "Hey, I'm Chad! :)"
	A child is born! They say, "Hey, I'm Stacy! :)"
	And they all come together and say,
	"And we all live inside of this vector!"
	Bob says, "AND HEY, I'M STILL BOB! :)"

# Observability

Logging uses slog, metrics and tracing use OpenTelemetry. Both are off
unless WithMetrics or WithSpanManager is given. WithCensus records each
registration in a census.Store.
*/
package brood
