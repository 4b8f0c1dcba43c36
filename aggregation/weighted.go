package aggregation

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// WeightedResult is one node's rollup for Weighted.
type WeightedResult struct {
	ID              string
	WeightedSum     float64
	WeightedAverage float64
	TotalWeight     float64
}

// Weighted computes, over self and every descendant, the weighted sum
// (value*weight summed) and weighted average. Node weight defaults to 1.0
// when absent (graphmodel.Node.EffectiveWeight).
// When total_weight is zero, weighted_average is 0 rather than NaN.
func Weighted(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) []WeightedResult {
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_weighted_aggregation")

	byID := make(map[string]graphmodel.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	result := make([]WeightedResult, 0, len(nodes))
	for _, n := range nodes {
		descendants := descendantsInDiscoveryOrder(adj, n.ID, func() { reporter.Tick(1) })

		var sum, totalWeight float64
		contribute := func(id string) {
			m := byID[id]
			w := m.EffectiveWeight()
			sum += m.Value * w
			totalWeight += w
		}

		contribute(n.ID)
		for _, d := range descendants {
			contribute(d)
		}

		avg := 0.0
		if totalWeight != 0 {
			avg = sum / totalWeight
		}

		result = append(result, WeightedResult{
			ID:              n.ID,
			WeightedSum:     sum,
			WeightedAverage: avg,
			TotalWeight:     totalWeight,
		})
	}

	return result
}
