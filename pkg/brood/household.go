package brood

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/brood/pkg/brood/census"
	"github.com/randalmurphal/brood/pkg/brood/observability"
	"github.com/randalmurphal/brood/pkg/brood/registry"
)

// Household is the ordered, exclusive owner of its members.
type Household struct {
	mu        sync.Mutex // serializes Register so census sequences match handles
	members   *registry.Registry[*Person]
	announcer *Announcer
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	spans     observability.SpanManager
	census    census.Store
	runID     string
}

// NewHousehold creates an empty household.
func NewHousehold(opts ...Option) *Household {
	o := applyOptions(opts)
	logger := o.logger
	if o.runID != "" {
		logger = observability.EnrichLogger(logger, o.runID)
	}
	return &Household{
		members:   registry.New[*Person](),
		announcer: o.announcer,
		logger:    logger,
		metrics:   o.metrics,
		spans:     o.spans,
		census:    o.census,
		runID:     o.runID,
	}
}

// Register moves p into the household and returns its stable handle.
//
// After Register succeeds the household is p's only owner; registering the
// same person again, here or elsewhere, returns ErrAlreadyOwned. If a census
// store is configured and the write fails, p is left unowned and a
// *CensusError is returned.
func (h *Household) Register(ctx context.Context, p *Person) (registry.Handle, error) {
	if p == nil {
		h.metrics.RecordRegistration(ctx, h.members.Len(), ErrNilPerson)
		return 0, ErrNilPerson
	}

	ctx, span := h.spans.StartRegisterSpan(ctx, p.id, p.name)

	handle, err := h.register(p)
	h.metrics.RecordRegistration(ctx, h.members.Len(), err)
	h.spans.EndSpanWithError(span, err)
	if err != nil {
		observability.LogRegisterError(h.logger, p.id, err)
		return 0, err
	}

	observability.LogRegistered(h.logger, p.id, p.name, int(handle), h.members.Len())
	return handle, nil
}

func (h *Household) register(p *Person) (registry.Handle, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !p.owner.CompareAndSwap(nil, h) {
		return 0, fmt.Errorf("register %s: %w", p.name, ErrAlreadyOwned)
	}

	if h.census != nil {
		err := h.census.Record(census.Entry{
			RunID:    h.runID,
			Sequence: h.members.Len() + 1,
			PersonID: p.id,
			Name:     p.name,
		})
		if err != nil {
			p.owner.Store(nil)
			observability.LogCensusError(h.logger, p.id, err)
			return 0, &CensusError{PersonID: p.id, Name: p.name, Err: err}
		}
	}

	return h.members.Append(p), nil
}

// Gather announces that all members now live together.
// The announcement does not list members.
func (h *Household) Gather(ctx context.Context) error {
	size := h.members.Len()
	if err := h.announcer.Gathering(); err != nil {
		return err
	}
	h.spans.AddSpanEvent(ctx, "household.gathered", attribute.Int("household.size", size))
	h.metrics.RecordGathering(ctx, size)
	observability.LogGathering(h.logger, size)
	return nil
}

// Lookup returns the member behind a handle.
func (h *Household) Lookup(handle registry.Handle) (*Person, error) {
	p, ok := h.members.Get(handle)
	if !ok {
		return nil, fmt.Errorf("lookup %s: %w", handle, ErrInvalidHandle)
	}
	return p, nil
}

// Members returns the members in registration order.
func (h *Household) Members() []*Person {
	return h.members.Values()
}

// Len returns the number of members.
func (h *Household) Len() int {
	return h.members.Len()
}

// RunID returns the run identifier the household was created with.
func (h *Household) RunID() string {
	return h.runID
}
