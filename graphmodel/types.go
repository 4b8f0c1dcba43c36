package graphmodel

import "time"

// Node is the single record type every graphkit kernel accepts, carrying the
// union of every algorithm-specific node variant as optional fields. A
// kernel that only needs Node.ID and Node.Type (e.g. traversal) simply
// ignores Value, Weight, Attributes, Capacity, StartTime, and EndTime.
type Node struct {
	// ID uniquely identifies this node within the caller's collection.
	// Required by every kernel.
	ID string `json:"id" validate:"required"`

	// Type classifies the node (e.g. "step", "machine", "source").
	// Required by every kernel.
	Type string `json:"type" validate:"required"`

	// Value is the node's own contribution before rollup.
	Value float64 `json:"value,omitempty"`

	// Weight is nil when absent — the weighted aggregation kernel treats an
	// absent weight as 1.0. Never use a sentinel number for absence; nil is
	// the only absence marker.
	Weight *float64 `json:"weight,omitempty" validate:"omitempty,gte=0"`

	// Attributes is a mapping from attribute name to float, used in place
	// of Value by the group-dictionary rollup.
	Attributes map[string]float64 `json:"attributes,omitempty"`

	// Capacity is nil when absent; the flow kernel does not currently bound
	// volumes by capacity (it checks conservation, not capacity limits),
	// but the field is carried so a future capacity-aware check has
	// somewhere to read it from.
	Capacity *float64 `json:"capacity,omitempty"`

	// StartTime and EndTime are a timed node's timestamps. Both nil for
	// non-timed algorithms. When set, EndTime must not precede StartTime.
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// Duration returns EndTime.Sub(StartTime) for a timed node. Callers must
// only invoke this when both timestamps are set (critical path and
// temporal rollup both check this before calling).
func (n Node) Duration() time.Duration {
	return n.EndTime.Sub(*n.StartTime)
}

// EffectiveWeight returns Weight's value, defaulting to 1.0 when absent.
func (n Node) EffectiveWeight() float64 {
	if n.Weight == nil {
		return 1.0
	}

	return *n.Weight
}

// Edge is the single record type every graphkit kernel accepts for edges,
// carrying the union of every algorithm-specific edge variant as optional
// fields.
type Edge struct {
	// From is the source node ID. May reference an ID absent from the node
	// list (a dangling edge); kernels treat this per their documented
	// policy rather than rejecting it here.
	From string `json:"from" validate:"required"`

	// To is the destination node ID. Same dangling-reference caveat as From.
	To string `json:"to" validate:"required"`

	// Type classifies the edge (e.g. "depends_on", "ships_to").
	Type string `json:"type" validate:"required"`

	// Weight is read by weighted/flow algorithms. Nil for untyped edges
	// that no weighted algorithm will read.
	Weight *float64 `json:"weight,omitempty" validate:"omitempty,gte=0"`

	// Delay is an optional transit delay.
	Delay *time.Duration `json:"delay,omitempty"`

	// LossPercentage is in [0,100]; graphmodel.ValidateEdges rejects a
	// value outside that range rather than letting it reach a kernel.
	LossPercentage *float64 `json:"loss_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`

	// Active is read by the dynamic-reachability kernel to filter the
	// subgraph before delegating to ancestor/descendant.
	Active *bool `json:"active,omitempty"`

	// Volume is read by the volume-flow kernel.
	Volume *float64 `json:"volume,omitempty"`
}

// EffectiveLoss returns LossPercentage, defaulting to 0 when absent.
func (e Edge) EffectiveLoss() float64 {
	if e.LossPercentage == nil {
		return 0
	}

	return *e.LossPercentage
}

// EffectiveWeight returns Weight, defaulting to 0 when absent.
func (e Edge) EffectiveWeight() float64 {
	if e.Weight == nil {
		return 0
	}

	return *e.Weight
}

// IsActive reports whether the edge is active, defaulting to true when the
// Active field is absent (an edge with no activity flag is always live).
func (e Edge) IsActive() bool {
	if e.Active == nil {
		return true
	}

	return *e.Active
}

// EffectiveVolume returns Volume, defaulting to 0 when absent.
func (e Edge) EffectiveVolume() float64 {
	if e.Volume == nil {
		return 0
	}

	return *e.Volume
}
