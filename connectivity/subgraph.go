package connectivity

import (
	"sort"

	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// StrongSubgraph is one complete SCC subgraph extracted by
// StrongSubgraphExtraction.
type StrongSubgraph struct {
	Nodes       []string
	Edges       []graphmodel.Edge
	SourceNodes []string
	TargetNodes []string
	NodeTypes   []string
	EdgeTypes   []string
}

// StrongSubgraphExtraction returns, for every strongly connected component
// satisfying the type filters, its induced subgraph.
// requiredNodeTypeSets and requiredEdgeTypeSets are sequences of type sets;
// an SCC is retained on each dimension iff that filter is empty or at least
// one of its sets is a subset of the SCC's observed types.
func StrongSubgraphExtraction(
	nodes []graphmodel.Node,
	edges []graphmodel.Edge,
	requiredNodeTypeSets [][]string,
	requiredEdgeTypeSets [][]string,
	sink progress.Sink,
) []StrongSubgraph {
	sccs := StronglyConnectedComponents(nodes, edges, sink)
	types := adjacency.NodeTypes(nodes)

	result := make([]StrongSubgraph, 0, len(sccs))
	for _, scc := range sccs {
		members := make(map[string]bool, len(scc))
		for _, id := range scc {
			members[id] = true
		}

		var sccEdges []graphmodel.Edge
		inDegree := make(map[string]int, len(scc))
		outDegree := make(map[string]int, len(scc))
		nodeTypeSet := make(map[string]bool)
		edgeTypeSet := make(map[string]bool)

		for _, id := range scc {
			nodeTypeSet[types[id]] = true
		}
		for _, e := range edges {
			if !members[e.From] || !members[e.To] {
				continue
			}
			sccEdges = append(sccEdges, e)
			outDegree[e.From]++
			inDegree[e.To]++
			edgeTypeSet[e.Type] = true
		}

		if !setFilterPasses(requiredNodeTypeSets, nodeTypeSet) {
			continue
		}
		if !setFilterPasses(requiredEdgeTypeSets, edgeTypeSet) {
			continue
		}

		var sources, targets []string
		for _, id := range scc {
			if inDegree[id] == 0 {
				sources = append(sources, id)
			}
			if outDegree[id] == 0 {
				targets = append(targets, id)
			}
		}

		result = append(result, StrongSubgraph{
			Nodes:       scc,
			Edges:       sccEdges,
			SourceNodes: sources,
			TargetNodes: targets,
			NodeTypes:   sortedKeys(nodeTypeSet),
			EdgeTypes:   sortedKeys(edgeTypeSet),
		})
	}

	return result
}

// setFilterPasses reports whether an empty filter, or at least one of its
// sets, is a subset of observed.
func setFilterPasses(filter [][]string, observed map[string]bool) bool {
	if len(filter) == 0 {
		return true
	}
	for _, set := range filter {
		if isSubset(set, observed) {
			return true
		}
	}
	return false
}

func isSubset(set []string, observed map[string]bool) bool {
	for _, v := range set {
		if !observed[v] {
			return false
		}
	}
	return true
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
