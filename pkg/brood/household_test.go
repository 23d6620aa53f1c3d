package brood

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/brood/pkg/brood/census"
	"github.com/randalmurphal/brood/pkg/brood/registry"
)

func newPeople(t *testing.T, opts []Option, names ...string) []*Person {
	t.Helper()
	people := make([]*Person, 0, len(names))
	for _, name := range names {
		p, err := NewPerson(context.Background(), name, opts...)
		require.NoError(t, err)
		people = append(people, p)
	}
	return people
}

func TestRegisterPreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	opts := quietOptions(&buf)
	ctx := context.Background()

	people := newPeople(t, opts, defaultNames...)
	h := NewHousehold(opts...)

	for i, p := range people {
		handle, err := h.Register(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, registry.Handle(i), handle)
		assert.True(t, p.Owned())
	}

	require.Equal(t, 4, h.Len())
	members := h.Members()
	for i, name := range defaultNames {
		assert.Equal(t, name, members[i].Name())
		assert.Same(t, people[i], members[i])
	}
}

func TestRegisterTransfersOwnershipOnce(t *testing.T) {
	var buf bytes.Buffer
	opts := quietOptions(&buf)
	ctx := context.Background()

	bob := newPeople(t, opts, "Bob")[0]
	first := NewHousehold(opts...)
	second := NewHousehold(opts...)

	_, err := first.Register(ctx, bob)
	require.NoError(t, err)

	_, err = first.Register(ctx, bob)
	assert.ErrorIs(t, err, ErrAlreadyOwned)

	_, err = second.Register(ctx, bob)
	assert.ErrorIs(t, err, ErrAlreadyOwned)

	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 0, second.Len())
}

func TestRegisterNil(t *testing.T) {
	var buf bytes.Buffer
	h := NewHousehold(quietOptions(&buf)...)

	_, err := h.Register(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilPerson)
	assert.Equal(t, 0, h.Len())
}

func TestRegisterRecordsCensus(t *testing.T) {
	var buf bytes.Buffer
	store := census.NewMemoryStore()
	opts := append(quietOptions(&buf), WithCensus(store), WithRunID("run-1"))
	ctx := context.Background()

	h := NewHousehold(opts...)
	for _, p := range newPeople(t, opts, "Bob", "Jeff") {
		_, err := h.Register(ctx, p)
		require.NoError(t, err)
	}

	entries, err := store.List("run-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Sequence)
	assert.Equal(t, "Bob", entries[0].Name)
	assert.Equal(t, 2, entries[1].Sequence)
	assert.Equal(t, "Jeff", entries[1].Name)
	assert.Equal(t, "run-1", h.RunID())
}

func TestRegisterCensusFailureLeavesPersonUnowned(t *testing.T) {
	var buf bytes.Buffer
	storeErr := errors.New("disk full")
	opts := append(quietOptions(&buf), WithCensus(failingCensus{err: storeErr}))

	bob := newPeople(t, opts, "Bob")[0]
	h := NewHousehold(opts...)

	_, err := h.Register(context.Background(), bob)

	var censusErr *CensusError
	require.ErrorAs(t, err, &censusErr)
	assert.Equal(t, bob.ID(), censusErr.PersonID)
	assert.Equal(t, "Bob", censusErr.Name)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "census record for Bob")

	assert.False(t, bob.Owned())
	assert.Equal(t, 0, h.Len())
}

func TestLookup(t *testing.T) {
	var buf bytes.Buffer
	opts := quietOptions(&buf)
	ctx := context.Background()

	h := NewHousehold(opts...)
	bob := newPeople(t, opts, "Bob")[0]
	handle, err := h.Register(ctx, bob)
	require.NoError(t, err)

	got, err := h.Lookup(handle)
	require.NoError(t, err)
	assert.Same(t, bob, got)

	_, err = h.Lookup(registry.Handle(7))
	assert.ErrorIs(t, err, ErrInvalidHandle)
	assert.ErrorContains(t, err, "#7")
}

func TestGather(t *testing.T) {
	var buf bytes.Buffer
	h := NewHousehold(quietOptions(&buf)...)

	require.NoError(t, h.Gather(context.Background()))
	assert.Equal(t,
		"And they all come together and say, \n\"And we all live inside of this vector!\"\n",
		buf.String())
}

func TestGatherWriteError(t *testing.T) {
	h := NewHousehold(WithAnnouncer(NewAnnouncer(&failingWriter{})))

	assert.ErrorIs(t, h.Gather(context.Background()), errWrite)
}
