package aggregation

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// BottomUpResult is one node's rollup for BottomUp or TemporalBottomUp.
type BottomUpResult struct {
	ID                string
	AggregatedValue   float64
	ContributingNodes []string
}

// descendantsInDiscoveryOrder runs an iterative DFS over adj.Forward from
// start (excluding start itself), returning ids in discovery order. Shared
// by BottomUp and TemporalBottomUp since both need self-followed-by-
// descendants in the same order.
func descendantsInDiscoveryOrder(adj *adjacency.List, start string, tick func()) []string {
	visited := map[string]bool{start: true}
	stack := append([]string(nil), adj.Forward[start]...)

	var order []string
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tick()

		if visited[id] {
			continue
		}
		visited[id] = true
		order = append(order, id)
		stack = append(stack, adj.Forward[id]...)
	}

	return order
}

// BottomUp computes, for every node, its own value plus the sum of every
// descendant's value.
func BottomUp(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) []BottomUpResult {
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_bottom_up_aggregation")

	values := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		values[n.ID] = n.Value
	}

	result := make([]BottomUpResult, 0, len(nodes))
	for _, n := range nodes {
		descendants := descendantsInDiscoveryOrder(adj, n.ID, func() { reporter.Tick(1) })

		sum := values[n.ID]
		for _, d := range descendants {
			sum += values[d]
		}

		contributing := make([]string, 0, len(descendants)+1)
		contributing = append(contributing, n.ID)
		contributing = append(contributing, descendants...)

		result = append(result, BottomUpResult{ID: n.ID, AggregatedValue: sum, ContributingNodes: contributing})
	}

	return result
}

// TemporalBottomUp is identical to BottomUp except each node's value is its
// duration in minutes (graphmodel.Node.Duration). A node missing either
// timestamp contributes 0.
func TemporalBottomUp(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) []BottomUpResult {
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_temporal_bottom_up_aggregation")

	values := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		if n.StartTime != nil && n.EndTime != nil {
			values[n.ID] = n.Duration().Minutes()
		}
	}

	result := make([]BottomUpResult, 0, len(nodes))
	for _, n := range nodes {
		descendants := descendantsInDiscoveryOrder(adj, n.ID, func() { reporter.Tick(1) })

		sum := values[n.ID]
		for _, d := range descendants {
			sum += values[d]
		}

		contributing := make([]string, 0, len(descendants)+1)
		contributing = append(contributing, n.ID)
		contributing = append(contributing, descendants...)

		result = append(result, BottomUpResult{ID: n.ID, AggregatedValue: sum, ContributingNodes: contributing})
	}

	return result
}
