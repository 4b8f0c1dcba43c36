package analysis

import (
	"sort"

	"github.com/graphkit/graphkit/aggregation"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// TypeStatsResult is the output of TypeStats.
type TypeStatsResult struct {
	NodeTypeCount   uint64
	EdgeTypeCount   uint64
	NodeTypes       []string
	EdgeTypes       []string
	SourceOnlyTypes []string
	TargetOnlyTypes []string
	Aggregation     aggregation.TypeLevelResult
}

// TypeStats summarizes the distinct node and edge types present in a graph
// and classifies each node type by the role it plays in edges: source-only
// types never appear as an edge's destination, target-only types never
// appear as an edge's origin. The full type-level rollup (node counts and
// inter-type transition probabilities) is delegated to aggregation.TypeLevel
// so both kernels agree on what "type-level" means.
func TypeStats(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) TypeStatsResult {
	reporter := progress.NewReporter(sink, "graph_type_statistics")

	nodeTypeSet := make(map[string]bool)
	for _, n := range nodes {
		reporter.Tick(1)
		nodeTypeSet[n.Type] = true
	}

	edgeTypeSet := make(map[string]bool)
	typeOf := make(map[string]string, len(nodes))
	for _, n := range nodes {
		if _, exists := typeOf[n.ID]; !exists {
			typeOf[n.ID] = n.Type
		}
	}

	sourceType := make(map[string]bool)
	targetType := make(map[string]bool)
	for _, e := range edges {
		reporter.Tick(1)
		edgeTypeSet[e.Type] = true

		if t, ok := typeOf[e.From]; ok {
			sourceType[t] = true
		}
		if t, ok := typeOf[e.To]; ok {
			targetType[t] = true
		}
	}

	var sourceOnly, targetOnly []string
	for t := range nodeTypeSet {
		if sourceType[t] && !targetType[t] {
			sourceOnly = append(sourceOnly, t)
		}
		if targetType[t] && !sourceType[t] {
			targetOnly = append(targetOnly, t)
		}
	}
	sort.Strings(sourceOnly)
	sort.Strings(targetOnly)

	return TypeStatsResult{
		NodeTypeCount:   uint64(len(nodeTypeSet)),
		EdgeTypeCount:   uint64(len(edgeTypeSet)),
		NodeTypes:       sortedKeys(nodeTypeSet),
		EdgeTypes:       sortedKeys(edgeTypeSet),
		SourceOnlyTypes: sourceOnly,
		TargetOnlyTypes: targetOnly,
		Aggregation:     aggregation.TypeLevel(nodes, edges, sink),
	}
}
