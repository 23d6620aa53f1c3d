package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records brood metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordBirth records the creation of a person.
	RecordBirth(ctx context.Context)

	// RecordRegistration records a registration attempt and the resulting household size.
	RecordRegistration(ctx context.Context, size int, err error)

	// RecordGathering records a membership announcement.
	RecordGathering(ctx context.Context, size int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	births        metric.Int64Counter
	registrations metric.Int64Counter
	regErrors     metric.Int64Counter
	householdSize metric.Int64Histogram
	gatherings    metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("brood")

	births, err := meter.Int64Counter("brood.person.births",
		metric.WithDescription("Number of people created"),
	)
	if err != nil {
		return nil, err
	}

	registrations, err := meter.Int64Counter("brood.household.registrations",
		metric.WithDescription("Number of successful registrations"),
	)
	if err != nil {
		return nil, err
	}

	regErrors, err := meter.Int64Counter("brood.household.registration_errors",
		metric.WithDescription("Number of rejected registrations"),
	)
	if err != nil {
		return nil, err
	}

	householdSize, err := meter.Int64Histogram("brood.household.size",
		metric.WithDescription("Household size observed at registration and gathering"),
	)
	if err != nil {
		return nil, err
	}

	gatherings, err := meter.Int64Counter("brood.household.gatherings",
		metric.WithDescription("Number of membership announcements"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		births:        births,
		registrations: registrations,
		regErrors:     regErrors,
		householdSize: householdSize,
		gatherings:    gatherings,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordBirth records a birth.
func (m *otelMetrics) RecordBirth(ctx context.Context) {
	m.births.Add(ctx, 1)
}

// RecordRegistration records a registration.
func (m *otelMetrics) RecordRegistration(ctx context.Context, size int, err error) {
	if err != nil {
		m.regErrors.Add(ctx, 1)
		return
	}
	m.registrations.Add(ctx, 1)
	m.householdSize.Record(ctx, int64(size),
		metric.WithAttributes(attribute.String("event", "register")))
}

// RecordGathering records a gathering.
func (m *otelMetrics) RecordGathering(ctx context.Context, size int) {
	m.gatherings.Add(ctx, 1)
	m.householdSize.Record(ctx, int64(size),
		metric.WithAttributes(attribute.String("event", "gather")))
}
