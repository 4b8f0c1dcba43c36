package paths

import (
	"fmt"

	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/connectivity"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// TypedSubgraph is one connected component selected and annotated by
// SubgraphFromSources or SubgraphFromTargets.
type TypedSubgraph struct {
	Nodes       []string
	Edges       []graphmodel.Edge
	SourceNodes []string
	TargetNodes []string
}

// extractTypedSubgraphs shares the component-selection and annotation logic
// between the two public entry points. selectComponent decides whether a
// connected component qualifies for extraction.
func extractTypedSubgraphs(
	nodes []graphmodel.Node,
	edges []graphmodel.Edge,
	sourceTypes, targetTypes []string,
	sink progress.Sink,
	selectComponent func(types map[string]bool) bool,
) []TypedSubgraph {
	types := adjacency.NodeTypes(nodes)
	adj := adjacency.Build(edges)
	_, infos := connectivity.ConnectedComponents(nodes, edges, sink)

	sourceSet := toSet(sourceTypes)
	targetSet := toSet(targetTypes)

	noOutgoingGlobally := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if len(adj.Forward[n.ID]) == 0 {
			noOutgoingGlobally[n.ID] = true
		}
	}

	var result []TypedSubgraph
	for _, info := range infos {
		observedTypes := make(map[string]bool, len(info.Nodes))
		for _, id := range info.Nodes {
			observedTypes[types[id]] = true
		}
		if !selectComponent(observedTypes) {
			continue
		}

		member := make(map[string]bool, len(info.Nodes))
		for _, id := range info.Nodes {
			member[id] = true
		}

		var compEdges []graphmodel.Edge
		for _, e := range edges {
			if member[e.From] && member[e.To] {
				compEdges = append(compEdges, e)
			}
		}

		var sources, targets []string
		for _, id := range info.Nodes {
			if sourceSet[types[id]] {
				sources = append(sources, id)
			}
			if len(targetSet) > 0 {
				if targetSet[types[id]] {
					targets = append(targets, id)
				}
			} else if noOutgoingGlobally[id] {
				targets = append(targets, id)
			}
		}

		result = append(result, TypedSubgraph{
			Nodes:       info.Nodes,
			Edges:       compEdges,
			SourceNodes: sources,
			TargetNodes: targets,
		})
	}

	return result
}

// SubgraphFromSources extracts one subgraph per connected component that
// contains at least one node whose type is in sourceTypes. sourceTypes is
// the required filter for this extractor and must be non-empty;
// targetTypes is optional and, left empty, falls back to "nodes with no
// outgoing edge anywhere in the graph" as the target set.
func SubgraphFromSources(nodes []graphmodel.Node, edges []graphmodel.Edge, sourceTypes, targetTypes []string, sink progress.Sink) ([]TypedSubgraph, error) {
	if len(sourceTypes) == 0 {
		return nil, fmt.Errorf("%w: sourceTypes must be non-empty", graphmodel.ErrInvalidArgument)
	}

	sourceSet := toSet(sourceTypes)
	return extractTypedSubgraphs(nodes, edges, sourceTypes, targetTypes, sink, func(observed map[string]bool) bool {
		for t := range sourceSet {
			if observed[t] {
				return true
			}
		}
		return false
	}), nil
}

// SubgraphFromTargets extracts one subgraph per connected component that
// contains at least one node whose type is in targetTypes. targetTypes is
// the required filter for this extractor and must be non-empty; sourceTypes
// is optional annotation only.
func SubgraphFromTargets(nodes []graphmodel.Node, edges []graphmodel.Edge, sourceTypes, targetTypes []string, sink progress.Sink) ([]TypedSubgraph, error) {
	if len(targetTypes) == 0 {
		return nil, fmt.Errorf("%w: targetTypes must be non-empty", graphmodel.ErrInvalidArgument)
	}

	targetSet := toSet(targetTypes)
	return extractTypedSubgraphs(nodes, edges, sourceTypes, targetTypes, sink, func(observed map[string]bool) bool {
		for t := range targetSet {
			if observed[t] {
				return true
			}
		}
		return false
	}), nil
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}
