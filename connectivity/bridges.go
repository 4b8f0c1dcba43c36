package connectivity

import (
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// Bridge is one undirected edge whose removal disconnects the graph.
type Bridge struct {
	A string
	B string
}

// Bridges runs the two-pass iterative Tarjan bridge algorithm. Self-loops
// are dropped and parallel edges collapsed to one undirected edge before
// pass 1. Bridges are emitted in DFS postorder of their parent endpoint
// (on a chain, the deepest bridge first), not sorted.
func Bridges(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) []Bridge {
	forest := buildSpanningForest(nodes, edges, sink, "graph_bridge_detection")
	low := forest.computeLow()

	var bridges []Bridge
	for _, v := range forest.postorder {
		dv := forest.discovery[v]
		for _, w := range forest.treeChildren[v] {
			if low[w] > dv {
				bridges = append(bridges, Bridge{A: v, B: w})
			}
		}
	}

	return bridges
}
