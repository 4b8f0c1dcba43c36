package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/graphkit/graphkit/progress"
)

// OtelSink records one span event per progress.Event on a fixed root span,
// tagging each event with the invocation id, procedure name, and milestone
// so a trace viewer groups milestones from one invocation together.
type OtelSink struct {
	span trace.Span
}

// NewOtelSink starts a span named "graphkit.invocation" on tracer and
// returns the context carrying that span (for callers that want nested
// spans) together with a sink that records progress events onto it.
// OtelSink only ever adds events to that span; callers end it with End.
func NewOtelSink(ctx context.Context, tracer trace.Tracer) (context.Context, *OtelSink) {
	ctx, span := tracer.Start(ctx, "graphkit.invocation")

	return ctx, &OtelSink{span: span}
}

// Emit implements progress.Sink by adding a span event per milestone.
func (s *OtelSink) Emit(e progress.Event) {
	s.span.AddEvent("graphkit.progress", trace.WithAttributes(
		attribute.String("graphkit.invocation_id", e.InvocationID.String()),
		attribute.String("graphkit.procedure", e.Procedure),
		attribute.Int64("graphkit.milestone", int64(e.Milestone)),
		attribute.Int64("graphkit.elapsed_ms", e.Elapsed.Milliseconds()),
	))
}

// End finalizes the underlying span. Callers invoke this once the
// kernel invocation the sink was scoped to has returned.
func (s *OtelSink) End() {
	s.span.End()
}
