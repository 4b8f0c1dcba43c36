package aggregation

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// GroupDictResult is one node's rollup for GroupDictionary.
type GroupDictResult struct {
	ID         string
	Aggregated map[string]float64
}

// GroupDictionary sums each attribute independently across self and every
// descendant. A node missing a given attribute contributes 0 for it.
func GroupDictionary(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) []GroupDictResult {
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_group_dictionary_aggregation")

	byID := make(map[string]graphmodel.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	result := make([]GroupDictResult, 0, len(nodes))
	for _, n := range nodes {
		descendants := descendantsInDiscoveryOrder(adj, n.ID, func() { reporter.Tick(1) })

		agg := make(map[string]float64)
		contribute := func(id string) {
			for k, v := range byID[id].Attributes {
				agg[k] += v
			}
		}

		contribute(n.ID)
		for _, d := range descendants {
			contribute(d)
		}

		result = append(result, GroupDictResult{ID: n.ID, Aggregated: agg})
	}

	return result
}
