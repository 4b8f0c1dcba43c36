package aggregation

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
	"github.com/graphkit/graphkit/traversal"
)

// TopDownResult is one node's rollup for TopDown.
type TopDownResult struct {
	ID                string
	AggregatedValue   float64
	ContributingNodes []string
}

// TopDown distributes each node's accumulated value equally across its
// direct children, added to each child's own value. Roots (no predecessor)
// keep their own value. Processing walks a
// topological order so every predecessor's share has already landed before
// a node distributes its own total onward; a node's first-encountered
// parent (in topological processing order) is recorded to reconstruct its
// contributing-ancestor chain.
func TopDown(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) []TopDownResult {
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_top_down_aggregation")
	order := traversal.TopologicalSort(nodes, edges, sink)

	accumulated := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		accumulated[n.ID] = n.Value
	}

	firstParent := make(map[string]string, len(nodes))

	for _, entry := range order {
		v := entry.ID
		children := adj.Forward[v]
		if len(children) == 0 {
			continue
		}

		share := accumulated[v] / float64(len(children))
		for _, c := range children {
			reporter.Tick(1)
			accumulated[c] += share
			if _, ok := firstParent[c]; !ok {
				firstParent[c] = v
			}
		}
	}

	result := make([]TopDownResult, 0, len(nodes))
	for _, n := range nodes {
		var chain []string
		for at := n.ID; ; {
			chain = append(chain, at)
			parent, ok := firstParent[at]
			if !ok {
				break
			}
			at = parent
		}

		result = append(result, TopDownResult{
			ID:                n.ID,
			AggregatedValue:   accumulated[n.ID],
			ContributingNodes: chain,
		})
	}

	return result
}
