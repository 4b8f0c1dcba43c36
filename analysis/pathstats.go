package analysis

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
	"github.com/graphkit/graphkit/traversal"
)

// PathStatsResult is the output of PathStats.
type PathStatsResult struct {
	LongestPathLength   uint64
	LongestPathDepth    uint64
	TotalReachableNodes uint64
	ConnectivitySpan    uint64
	BranchingFactor     float64
	NodeTypeSequence    []string
}

// PathStats computes path-shape metrics for a graph together with
// reachability metrics rooted at sourceID. LongestPathLength/Depth are
// global, computed over the DAG formed by ignoring nodes that participate
// in a cycle (the same exclusion TopologicalSort already applies).
// TotalReachableNodes, ConnectivitySpan, and NodeTypeSequence are all
// relative to sourceID: reachable count and BFS-level span come from a
// breadth-first walk, and the type sequence lists each distinct node type
// the first time it is encountered in that walk's order.
func PathStats(nodes []graphmodel.Node, edges []graphmodel.Edge, sourceID string, sink progress.Sink) PathStatsResult {
	reporter := progress.NewReporter(sink, "graph_path_statistics")

	longestLength, longestDepth := longestDAGPath(nodes, edges, sink)

	tracked := traversal.TrackedBFS(nodes, edges, sourceID, sink)

	var span uint64
	seenType := make(map[string]bool)
	var typeSequence []string
	for _, tn := range tracked {
		reporter.Tick(1)
		if tn.Depth > span {
			span = tn.Depth
		}
		if !seenType[tn.Type] {
			seenType[tn.Type] = true
			typeSequence = append(typeSequence, tn.Type)
		}
	}

	nodeCount := float64(len(nodes))
	branchingFactor := safeDivide(float64(len(edges)), nodeCount)

	var totalReachable uint64
	if len(tracked) > 0 {
		totalReachable = uint64(len(tracked)) - 1
	}

	return PathStatsResult{
		LongestPathLength:   longestLength,
		LongestPathDepth:    longestDepth,
		TotalReachableNodes: totalReachable,
		ConnectivitySpan:    span,
		BranchingFactor:     branchingFactor,
		NodeTypeSequence:    typeSequence,
	}
}

// longestDAGPath computes the longest path (in edges) over the acyclic
// portion of the graph via a single DP pass over topological order,
// mirroring the dynamic-programming shape paths.CriticalPath uses for
// duration instead of hop count.
func longestDAGPath(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) (length, depth uint64) {
	adj := adjacency.Build(edges)
	order := traversal.TopologicalSort(nodes, edges, sink)

	dp := make(map[string]uint64, len(order))
	for _, entry := range order {
		dp[entry.ID] = 0
	}

	var best uint64
	for _, entry := range order {
		base := dp[entry.ID]
		for _, nb := range adj.Forward[entry.ID] {
			if _, known := dp[nb]; !known {
				continue
			}
			if base+1 > dp[nb] {
				dp[nb] = base + 1
			}
		}
		if base > best {
			best = base
		}
	}

	if len(order) == 0 {
		return 0, 0
	}
	return best, best + 1
}
