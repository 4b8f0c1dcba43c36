package traversal

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// TopoEntry is one node's position in a layered topological sort.
type TopoEntry struct {
	ID        string
	TopoOrder uint64
	Layer     uint64
}

// TopologicalSort computes a layered topological order via Kahn's
// algorithm. Nodes participating in a cycle never reach in-degree zero and
// are silently omitted — callers needing cycle diagnostics run
// DetectCycles. Duplicate node ids are deduplicated to their first
// occurrence before computing in-degrees, and only edges whose endpoints
// are both known node ids contribute to a node's in-degree or adjacency
// walk.
func TopologicalSort(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) []TopoEntry {
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_topological_sort")

	ids := make([]string, 0, len(nodes))
	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if !known[n.ID] {
			known[n.ID] = true
			ids = append(ids, n.ID)
		}
	}

	inDegree := make(map[string]int, len(ids))
	for _, id := range ids {
		inDegree[id] = 0
	}
	for _, e := range edges {
		if known[e.From] && known[e.To] {
			inDegree[e.To]++
		}
	}

	var currentLayer []string
	for _, id := range ids {
		if inDegree[id] == 0 {
			currentLayer = append(currentLayer, id)
		}
	}

	result := make([]TopoEntry, 0, len(ids))
	var topoOrder uint64
	var layer uint64

	for len(currentLayer) > 0 {
		var nextLayer []string
		for _, id := range currentLayer {
			result = append(result, TopoEntry{ID: id, TopoOrder: topoOrder, Layer: layer})
			topoOrder++

			for _, nb := range adj.Forward[id] {
				reporter.Tick(1)
				if !known[nb] {
					continue
				}
				inDegree[nb]--
				if inDegree[nb] == 0 {
					nextLayer = append(nextLayer, nb)
				}
			}
		}
		currentLayer = nextLayer
		layer++
	}

	return result
}
