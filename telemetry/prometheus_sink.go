package telemetry

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/graphkit/graphkit/progress"
)

// PrometheusSink increments a counter per (procedure, milestone) pair it
// observes, letting a host chart how often each kernel crosses each
// milestone without reading trace data.
type PrometheusSink struct {
	counter *prometheus.CounterVec
}

// NewPrometheusSink registers a "graphkit_progress_milestones_total"
// CounterVec on reg (pass prometheus.DefaultRegisterer for the global
// registry) and returns a sink backed by it.
func NewPrometheusSink(reg prometheus.Registerer) (*PrometheusSink, error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "graphkit_progress_milestones_total",
		Help: "Count of progress milestones crossed by graphkit kernel invocations, by procedure and milestone.",
	}, []string{"procedure", "milestone"})

	if err := reg.Register(counter); err != nil {
		return nil, err
	}

	return &PrometheusSink{counter: counter}, nil
}

// Emit implements progress.Sink by incrementing the counter for e's
// procedure and milestone. prometheus.CounterVec is safe for concurrent use
// by design, satisfying progress.Sink's concurrency contract.
func (s *PrometheusSink) Emit(e progress.Event) {
	s.counter.WithLabelValues(e.Procedure, strconv.FormatUint(e.Milestone, 10)).Inc()
}
