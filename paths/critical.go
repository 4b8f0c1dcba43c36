package paths

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
	"github.com/graphkit/graphkit/traversal"
)

// CriticalPathResult is the output of CriticalPath.
type CriticalPathResult struct {
	CriticalPath  []string
	TotalDuration float64
}

// CriticalPath finds the longest-duration path through a timed DAG. Each
// node's duration is graphmodel.Node.Duration()
// (end_time - start_time, in minutes); a node missing either timestamp has
// duration 0. dp is computed in topological order:
// dp[v] = duration(v) + max(dp[u]) over v's predecessors u, ties broken in
// favor of whichever predecessor is first in reverse-adjacency
// (edge-insertion) order. total_duration is the maximum dp across all
// nodes. Behavior on a cyclic input is undefined; callers pre-validate with
// traversal.DetectCycles.
func CriticalPath(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) CriticalPathResult {
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_critical_path")

	durations := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		if n.StartTime != nil && n.EndTime != nil {
			durations[n.ID] = n.Duration().Minutes()
		}
	}

	order := traversal.TopologicalSort(nodes, edges, sink)

	dp := make(map[string]float64, len(nodes))
	parent := make(map[string]string, len(nodes))
	hasParent := make(map[string]bool, len(nodes))

	var best float64
	var bestNode string

	for _, entry := range order {
		v := entry.ID
		dp[v] = durations[v]

		for _, u := range adj.Reverse[v] {
			reporter.Tick(1)
			if _, ok := dp[u]; !ok {
				continue // predecessor outside the topological order (e.g. in a cycle)
			}
			candidate := dp[u] + durations[v]
			if candidate > dp[v] {
				dp[v] = candidate
				parent[v] = u
				hasParent[v] = true
			}
		}

		if dp[v] > best {
			best = dp[v]
			bestNode = v
		}
	}

	if bestNode == "" {
		return CriticalPathResult{CriticalPath: nil, TotalDuration: 0}
	}

	var path []string
	for at := bestNode; ; {
		path = append([]string{at}, path...)
		if !hasParent[at] {
			break
		}
		at = parent[at]
	}

	return CriticalPathResult{CriticalPath: path, TotalDuration: best}
}
