package brood

import (
	"log/slog"

	"github.com/randalmurphal/brood/pkg/brood/census"
	"github.com/randalmurphal/brood/pkg/brood/observability"
)

// options holds the collaborators shared by people, households, and runs.
type options struct {
	announcer *Announcer
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	spans     observability.SpanManager
	census    census.Store
	runID     string
}

func defaultOptions() options {
	return options{
		announcer: DefaultAnnouncer(),
		logger:    slog.Default(),
		metrics:   observability.NoopMetrics{},
		spans:     observability.NoopSpanManager{},
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures NewPerson, NewHousehold, and Run.
type Option func(*options)

// WithAnnouncer sets where announcements are written.
// Default: standard output.
func WithAnnouncer(a *Announcer) Option {
	return func(o *options) {
		if a != nil {
			o.announcer = a
		}
	}
}

// WithLogger sets the structured logger. A nil logger disables logging.
// Default: slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics enables metrics recording.
//
// Example:
//
//	household := brood.NewHousehold(brood.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithSpanManager enables tracing.
func WithSpanManager(sm observability.SpanManager) Option {
	return func(o *options) {
		if sm != nil {
			o.spans = sm
		}
	}
}

// WithCensus records every registration in store.
func WithCensus(store census.Store) Option {
	return func(o *options) {
		o.census = store
	}
}

// WithRunID sets the run identifier used for logging and the census.
// If not set, Run generates a UUID.
func WithRunID(id string) Option {
	return func(o *options) {
		o.runID = id
	}
}
