// Package progress defines the boundary between graphkit's kernels and the
// host's logging/telemetry sink: the core emits events at fixed milestones,
// and a sink — owned by the host, not by graphkit — consumes them.
//
// graphkit ships only the interface and a no-op default here. Concrete
// sinks (OpenTelemetry spans, Prometheus counters) live in package
// telemetry, which no kernel package imports.
package progress

import (
	"time"

	"github.com/google/uuid"
)

// Milestones are the fixed iteration counts kernels report progress at:
// 50k, 100k, 500k, 1M processed elements.
var Milestones = [...]uint64{50_000, 100_000, 500_000, 1_000_000}

// Event is one progress notification. Procedure and Milestone identify what
// happened; InvocationID correlates every event from a single Reporter
// (minted once per NewReporter call, via uuid.New, so concurrent
// invocations of the same procedure on different goroutines are still
// distinguishable in a host's aggregated log/trace stream). A kernel that
// calls another kernel's entry point passes its sink on, and the inner
// call's events carry the inner Reporter's own InvocationID. Elapsed is
// wall-clock time since invocation start — informational only; it never
// affects algorithm results.
type Event struct {
	InvocationID uuid.UUID
	Procedure    string
	Milestone    uint64
	Elapsed      time.Duration
}

// Sink consumes Events. Implementations must be non-blocking and safe for
// concurrent use; if a sink is not, the caller must wrap it — graphkit
// never adds its own locking around Emit.
type Sink interface {
	Emit(Event)
}

// NoopSink discards every event. It is the default used by every kernel
// entry point when the caller passes a nil Sink, so "no sink configured" is
// never a special case a kernel has to branch on.
type NoopSink struct{}

// Emit implements Sink by doing nothing.
func (NoopSink) Emit(Event) {}

// Reporter tracks a single invocation's progress against Milestones and
// emits at most one Event per milestone crossing. Kernels construct one
// Reporter per top-level call via NewReporter and call Tick per processed
// element (edge, node, or path step, per the algorithm's natural unit).
type Reporter struct {
	sink      Sink
	procedure string
	id        uuid.UUID
	start     time.Time
	processed uint64
	next      int
}

// NewReporter starts tracking progress for one invocation of procedure. A
// nil sink is replaced with NoopSink so callers never need a nil check.
func NewReporter(sink Sink, procedure string) *Reporter {
	if sink == nil {
		sink = NoopSink{}
	}

	return &Reporter{
		sink:      sink,
		procedure: procedure,
		id:        uuid.New(),
		start:     time.Now(),
	}
}

// Tick records n newly processed elements and emits an Event for each
// Milestones entry crossed since the last Tick.
func (r *Reporter) Tick(n uint64) {
	r.processed += n
	for r.next < len(Milestones) && r.processed >= Milestones[r.next] {
		r.sink.Emit(Event{
			InvocationID: r.id,
			Procedure:    r.procedure,
			Milestone:    Milestones[r.next],
			Elapsed:      time.Since(r.start),
		})
		r.next++
	}
}
