package traversal

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// DFS performs a depth-first traversal from sourceID using an explicit
// LIFO stack. Neighbors are pushed in edge-insertion order; because the
// stack is LIFO this reverses them, so the *last* edge from a node is
// explored first — this is observable and every test in this package
// that depends on it pins the exact order. The visited guard that decides
// emission is checked on pop; a push skips only nodes already expanded, so
// a node may be pushed onto the stack multiple times (once per incoming
// edge discovered before it is first popped) but is expanded only the
// first time it is popped.
func DFS(nodes []graphmodel.Node, edges []graphmodel.Edge, sourceID string, sink progress.Sink) []string {
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_dfs")

	visited := make(map[string]bool, len(nodes)+1)
	order := make([]string, 0, len(nodes)+1)
	stack := []string{sourceID}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[id] {
			continue
		}
		visited[id] = true
		order = append(order, id)

		for _, nb := range adj.Forward[id] {
			reporter.Tick(1)
			if !visited[nb] {
				stack = append(stack, nb)
			}
		}
	}

	return order
}
