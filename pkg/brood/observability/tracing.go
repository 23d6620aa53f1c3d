package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Uses the global OTel tracer provider.
var tracer = otel.Tracer("brood")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartRunSpan starts a span covering a whole run.
	StartRunSpan(ctx context.Context, runID string, people int) (context.Context, trace.Span)

	// StartRegisterSpan starts a span for a single registration.
	// It should be a child of the run span.
	StartRegisterSpan(ctx context.Context, personID, name string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartRunSpan starts a span for a run.
func (m *otelSpanManager) StartRunSpan(ctx context.Context, runID string, people int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "brood.run",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.Int("run.people", people),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartRegisterSpan starts a span for a registration.
func (m *otelSpanManager) StartRegisterSpan(ctx context.Context, personID, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "brood.register",
		trace.WithAttributes(
			attribute.String("person.id", personID),
			attribute.String("person.name", name),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
