package connectivity

import (
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
	"github.com/graphkit/graphkit/traversal"
)

// DynamicReachability computes ancestor/descendant closures restricted to
// the subgraph of edges whose Active flag (defaulting to true, per
// graphmodel.Edge.IsActive) is set. It filters edges and delegates to
// traversal.AncestorDescendant.
func DynamicReachability(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) []traversal.ClosureResult {
	active := make([]graphmodel.Edge, 0, len(edges))
	for _, e := range edges {
		if e.IsActive() {
			active = append(active, e)
		}
	}

	return traversal.AncestorDescendant(nodes, active, sink)
}
