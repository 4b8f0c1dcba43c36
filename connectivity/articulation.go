package connectivity

import (
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// ArticulationPoints runs the same spanning-forest scaffolding as bridge
// detection. A node is an articulation point if it is
// a DFS root with two or more tree children, or a non-root node with some
// tree child whose low value is not strictly less than the node's own
// discovery time.
func ArticulationPoints(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) []string {
	forest := buildSpanningForest(nodes, edges, sink, "graph_articulation_points")
	low := forest.computeLow()

	var points []string
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if seen[n.ID] {
			continue
		}
		seen[n.ID] = true

		if forest.isRoot(n.ID) {
			if len(forest.treeChildren[n.ID]) >= 2 {
				points = append(points, n.ID)
			}
			continue
		}

		dv := forest.discovery[n.ID]
		for _, w := range forest.treeChildren[n.ID] {
			if low[w] >= dv {
				points = append(points, n.ID)
				break
			}
		}
	}

	return points
}
