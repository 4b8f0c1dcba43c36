package aggregation

import (
	"sort"

	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// TypeNodeCount is one entry of TypeLevel's aggregate_nodes.
type TypeNodeCount struct {
	Type      string
	NodeCount uint64
}

// TypeTransition is one entry of TypeLevel's aggregate_edges.
type TypeTransition struct {
	FromType              string
	ToType                string
	TransitionCount       uint64
	TransitionProbability float64
}

// TypeLevelResult is the output of TypeLevel.
type TypeLevelResult struct {
	AggregateNodes []TypeNodeCount
	AggregateEdges []TypeTransition
}

// TypeLevel aggregates a graph to the level of its node types. Only types
// that appear as the endpoint of at least one edge are emitted; isolated
// types are excluded. transition_probability(A->B) is count(A->B) divided
// by the total outgoing edges observed from type A; division by zero
// yields 0 everywhere in this kernel. Output is ordered by from-type then
// to-type, lexicographically.
func TypeLevel(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) TypeLevelResult {
	types := adjacency.NodeTypes(nodes)
	reporter := progress.NewReporter(sink, "graph_type_level_aggregation")

	nodeCount := make(map[string]uint64)
	transitionCount := make(map[[2]string]uint64)
	outFromType := make(map[string]uint64)
	observedTypes := make(map[string]bool)

	for _, e := range edges {
		reporter.Tick(1)
		fromType, fromOK := types[e.From]
		toType, toOK := types[e.To]
		if !fromOK || !toOK {
			continue
		}

		observedTypes[fromType] = true
		observedTypes[toType] = true
		transitionCount[[2]string{fromType, toType}]++
		outFromType[fromType]++
	}

	for _, t := range types {
		if observedTypes[t] {
			nodeCount[t]++
		}
	}

	nodeTypes := sortedStringKeys(observedTypes)
	aggregateNodes := make([]TypeNodeCount, 0, len(nodeTypes))
	for _, t := range nodeTypes {
		aggregateNodes = append(aggregateNodes, TypeNodeCount{Type: t, NodeCount: nodeCount[t]})
	}

	type pair struct{ from, to string }
	pairs := make([]pair, 0, len(transitionCount))
	for k := range transitionCount {
		pairs = append(pairs, pair{from: k[0], to: k[1]})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].from != pairs[j].from {
			return pairs[i].from < pairs[j].from
		}
		return pairs[i].to < pairs[j].to
	})

	aggregateEdges := make([]TypeTransition, 0, len(pairs))
	for _, p := range pairs {
		count := transitionCount[[2]string{p.from, p.to}]
		total := outFromType[p.from]

		probability := 0.0
		if total != 0 {
			probability = float64(count) / float64(total)
		}

		aggregateEdges = append(aggregateEdges, TypeTransition{
			FromType:              p.from,
			ToType:                p.to,
			TransitionCount:       count,
			TransitionProbability: probability,
		})
	}

	return TypeLevelResult{AggregateNodes: aggregateNodes, AggregateEdges: aggregateEdges}
}

func sortedStringKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
