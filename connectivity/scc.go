package connectivity

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// tarjanFrame is one explicit DFS stack frame for iterative Tarjan: id is
// the node under exploration and edgeIdx is how far its forward neighbor
// list has been scanned. Keeping position on the frame instead of recursing
// is what keeps this off the native call stack, mirroring traversal's
// cycleFrame.
type tarjanFrame struct {
	id      string
	edgeIdx int
}

// StronglyConnectedComponents runs iterative Tarjan SCC. Output order is
// reverse topological over the condensation, which falls out naturally
// from popping a component the moment its root finishes backtracking.
func StronglyConnectedComponents(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) [][]string {
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_scc")

	ids := make([]string, 0, len(nodes))
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if !seen[n.ID] {
			seen[n.ID] = true
			ids = append(ids, n.ID)
		}
	}

	discovery := make(map[string]int, len(ids))
	lowlink := make(map[string]int, len(ids))
	onStack := make(map[string]bool, len(ids))
	var sccStack []string
	var counter int
	var sccs [][]string

	for _, root := range ids {
		if _, ok := discovery[root]; ok {
			continue
		}

		frames := []tarjanFrame{{id: root}}
		discovery[root] = counter
		lowlink[root] = counter
		counter++
		sccStack = append(sccStack, root)
		onStack[root] = true

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			nbrs := adj.Forward[top.id]

			advanced := false
			for top.edgeIdx < len(nbrs) {
				nb := nbrs[top.edgeIdx]
				top.edgeIdx++
				reporter.Tick(1)

				if !seen[nb] {
					continue // dangling edge: not a known node
				}

				if _, visited := discovery[nb]; !visited {
					discovery[nb] = counter
					lowlink[nb] = counter
					counter++
					sccStack = append(sccStack, nb)
					onStack[nb] = true
					frames = append(frames, tarjanFrame{id: nb})
					advanced = true
					break
				}
				if onStack[nb] && discovery[nb] < lowlink[top.id] {
					lowlink[top.id] = discovery[nb]
				}
			}
			if advanced {
				continue
			}

			v := top.id
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := &frames[len(frames)-1]
				if lowlink[v] < lowlink[parent.id] {
					lowlink[parent.id] = lowlink[v]
				}
			}

			if lowlink[v] == discovery[v] {
				var scc []string
				for {
					w := sccStack[len(sccStack)-1]
					sccStack = sccStack[:len(sccStack)-1]
					onStack[w] = false
					scc = append(scc, w)
					if w == v {
						break
					}
				}
				sccs = append(sccs, scc)
			}
		}
	}

	return sccs
}
