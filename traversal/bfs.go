package traversal

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// BFS performs a breadth-first traversal from sourceID over edges. The
// source is always emitted first, even when it has no outgoing edges and
// never appears in the adjacency index; neighbors within a level are
// visited in edge-insertion order; each node is emitted at most once,
// guarded at enqueue time; edges to ids absent from the node list are
// still followed (plain BFS performs no membership validation — that
// filtering is Tracked BFS's job).
//
// nodes is accepted for signature symmetry with the rest of the kernel
// suite and to size the result slice; plain BFS never reads node fields.
func BFS(nodes []graphmodel.Node, edges []graphmodel.Edge, sourceID string, sink progress.Sink) []string {
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_bfs")

	visited := make(map[string]bool, len(nodes)+1)
	visited[sourceID] = true

	order := make([]string, 0, len(nodes)+1)
	order = append(order, sourceID)

	queue := []string{sourceID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, nb := range adj.Forward[id] {
			reporter.Tick(1)
			if visited[nb] {
				continue
			}
			visited[nb] = true
			order = append(order, nb)
			queue = append(queue, nb)
		}
	}

	return order
}
