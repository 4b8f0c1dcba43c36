package traversal

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// ClosureResult is one node's transitive closure. ReachableNodes is the
// concatenation Ancestors++Descendants — order preserved, not a set union.
type ClosureResult struct {
	ID             string
	Ancestors      []string
	Descendants    []string
	ReachableNodes []string
}

// closureWalk runs an iterative DFS over adj starting at start's direct
// neighbors (start itself is never emitted), pushing all neighbors and
// guarding expansion at pop — the same mechanics as DFS applied to
// whichever adjacency direction the caller passes.
func closureWalk(adj map[string][]string, start string, tick func()) []string {
	visited := map[string]bool{start: true}
	var order []string
	stack := append([]string(nil), adj[start]...)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tick()

		if visited[id] {
			continue
		}
		visited[id] = true
		order = append(order, id)
		stack = append(stack, adj[id]...)
	}

	return order
}

// AncestorDescendant computes, for every node in the input list, its
// transitive ancestors (DFS over reverse adjacency) and descendants (DFS
// over forward adjacency).
func AncestorDescendant(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) []ClosureResult {
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_ancestor_descendant")
	tick := func() { reporter.Tick(1) }

	result := make([]ClosureResult, 0, len(nodes))
	for _, n := range nodes {
		ancestors := closureWalk(adj.Reverse, n.ID, tick)
		descendants := closureWalk(adj.Forward, n.ID, tick)

		reachable := make([]string, 0, len(ancestors)+len(descendants))
		reachable = append(reachable, ancestors...)
		reachable = append(reachable, descendants...)

		result = append(result, ClosureResult{
			ID:             n.ID,
			Ancestors:      ancestors,
			Descendants:    descendants,
			ReachableNodes: reachable,
		})
	}

	return result
}
