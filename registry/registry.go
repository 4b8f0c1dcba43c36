// Package registry maps procedure names to the kernel entry points in
// traversal, connectivity, paths, aggregation, flow, and analysis, for a
// host that dispatches by name over an already-decoded JSON payload. It
// wires existing kernel functions and performs no algorithmic work of its
// own; all graph semantics live in the kernel packages it calls.
package registry

import (
	"encoding/json"
	"fmt"

	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// Procedure is one named entry in a Registry: Func decodes its own request
// shape out of payload, runs the kernel call it wraps, and returns the
// result as any so the whole registry can share one function type.
// Describe is a static summary of the shape Func expects and returns,
// independent of any particular invocation.
type Procedure struct {
	Name     string
	Describe ProcedureDescription
	Func     func(payload json.RawMessage) (any, error)
}

// ProcedureDescription is the declared input/output shape of a Procedure,
// returned as-is by a DescribeOnly invocation instead of running Func.
type ProcedureDescription struct {
	Input  string
	Output string
}

// Registry maps procedure name to Procedure. It owns no state beyond the
// name→Procedure map and the progress.Sink each wrapped call reports
// through.
type Registry struct {
	procedures map[string]Procedure
}

// New builds a Registry with every known procedure wired, reporting
// progress for each invocation through sink. sink may be nil.
func New(sink progress.Sink) *Registry {
	r := &Registry{procedures: make(map[string]Procedure)}
	for _, p := range buildProcedures(sink) {
		r.procedures[p.Name] = p
	}
	return r
}

// Names returns every registered procedure name.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.procedures))
	for name := range r.procedures {
		names = append(names, name)
	}
	return names
}

// Lookup returns the Procedure registered under name, if any.
func (r *Registry) Lookup(name string) (Procedure, bool) {
	p, ok := r.procedures[name]
	return p, ok
}

// Invoke runs the named procedure against payload. With describeOnly set,
// it returns the procedure's ProcedureDescription instead of running Func —
// payload is not even decoded, so a malformed payload never surfaces in a
// describe-only call.
func (r *Registry) Invoke(name string, payload json.RawMessage, describeOnly bool) (any, error) {
	p, ok := r.procedures[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown procedure %q", graphmodel.ErrInvalidArgument, name)
	}
	if describeOnly {
		return p.Describe, nil
	}
	return p.Func(payload)
}
