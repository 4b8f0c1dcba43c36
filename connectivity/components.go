package connectivity

import (
	"fmt"

	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// ComponentAssignment is one node's membership in a connected component.
type ComponentAssignment struct {
	NodeID      string
	ComponentID string
}

// ComponentInfo describes one discovered component.
type ComponentInfo struct {
	ComponentID string
	Size        uint64
	Nodes       []string
}

// ConnectedComponents treats edges as undirected and partitions the node
// list via BFS. Component ids are comp_<n> where n is a 0-based counter in
// discovery order; discovery iterates the node list in order, so an
// isolated node still gets its own size-1 component.
func ConnectedComponents(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) ([]ComponentAssignment, []ComponentInfo) {
	adj, _ := buildUndirected(nodes, edges)
	reporter := progress.NewReporter(sink, "graph_connected_components")

	visited := make(map[string]bool, len(nodes))
	assignments := make([]ComponentAssignment, 0, len(nodes))
	infos := make([]ComponentInfo, 0)

	next := 0
	for _, n := range nodes {
		if visited[n.ID] {
			continue
		}

		compID := fmt.Sprintf("comp_%d", next)
		next++

		queue := []string{n.ID}
		visited[n.ID] = true
		var members []string

		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			members = append(members, id)
			assignments = append(assignments, ComponentAssignment{NodeID: id, ComponentID: compID})

			for _, nb := range adj[id] {
				reporter.Tick(1)
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}

		infos = append(infos, ComponentInfo{ComponentID: compID, Size: uint64(len(members)), Nodes: members})
	}

	return assignments, infos
}
