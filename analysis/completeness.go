package analysis

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// WorkflowPattern names a start/end type pair a caller wants checked for
// end-to-end reachability: can a node of a start type reach a node of an
// end type at all?
type WorkflowPattern struct {
	StartTypes []string
	EndTypes   []string
}

// PatternCompleteness is one WorkflowPattern's outcome.
type PatternCompleteness struct {
	StartTypes       []string
	EndTypes         []string
	CompleteCount    uint64
	IncompleteCount  uint64
	IncompleteStarts []string
}

// CheckCompleteness reports, for each pattern, how many nodes whose type is
// in StartTypes can reach at least one node whose type is in EndTypes
// (complete) versus cannot (incomplete). Reachability is computed once per
// start node via forward DFS and reused across every pattern that shares
// it, since the set of start nodes eligible for more than one pattern is
// common in practice (a "request received" type often feeds several
// completeness checks).
func CheckCompleteness(nodes []graphmodel.Node, edges []graphmodel.Edge, patterns []WorkflowPattern, sink progress.Sink) []PatternCompleteness {
	reporter := progress.NewReporter(sink, "graph_workflow_completeness")
	adj := adjacency.Build(edges)

	typeOf := make(map[string]string, len(nodes))
	for _, n := range nodes {
		if _, exists := typeOf[n.ID]; !exists {
			typeOf[n.ID] = n.Type
		}
	}

	reachableTypeSet := make(map[string]map[string]bool, len(typeOf))
	reachableTypes := func(start string) map[string]bool {
		if cached, ok := reachableTypeSet[start]; ok {
			return cached
		}

		visited := map[string]bool{start: true}
		types := map[string]bool{}
		stack := append([]string(nil), adj.Forward[start]...)
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			reporter.Tick(1)

			if visited[id] {
				continue
			}
			visited[id] = true
			if t, ok := typeOf[id]; ok {
				types[t] = true
			}
			stack = append(stack, adj.Forward[id]...)
		}

		reachableTypeSet[start] = types
		return types
	}

	results := make([]PatternCompleteness, 0, len(patterns))
	for _, pattern := range patterns {
		startSet := toBoolSet(pattern.StartTypes)
		endSet := toBoolSet(pattern.EndTypes)

		result := PatternCompleteness{StartTypes: pattern.StartTypes, EndTypes: pattern.EndTypes}
		for _, n := range nodes {
			if !startSet[typeOf[n.ID]] {
				continue
			}

			complete := false
			for t := range reachableTypes(n.ID) {
				if endSet[t] {
					complete = true
					break
				}
			}

			if complete {
				result.CompleteCount++
			} else {
				result.IncompleteCount++
				result.IncompleteStarts = append(result.IncompleteStarts, n.ID)
			}
		}
		results = append(results, result)
	}

	return results
}

func toBoolSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
