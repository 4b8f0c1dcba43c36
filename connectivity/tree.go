package connectivity

import (
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// dfsFrame is an explicit DFS stack frame over the undirected adjacency,
// shared by bridge detection and articulation points.
type dfsFrame struct {
	id      string
	edgeIdx int
}

// spanningForest is the pass-1 output shared by bridges and articulation
// points: a DFS spanning forest over the undirected graph, with discovery
// times, each node's tree parent recorded as the *discovery time* of that
// parent (root gets -1), tree children in discovery order, and the
// postorder node sequence (children fully processed before their parent)
// that pass 2 walks so a node's low value is only read after every tree
// child has folded its own low value up into it.
type spanningForest struct {
	adj          map[string][]string
	discovery    map[string]int
	parent       map[string]int
	treeChildren map[string][]string
	postorder    []string
}

// buildSpanningForest performs pass 1 of §4.C4.3/§4.C4.4: an iterative DFS
// from every unvisited node, assigning discovery order and recording tree
// structure. Frames carry their scan position so no native recursion is
// used.
func buildSpanningForest(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink, procedure string) *spanningForest {
	adj, _ := buildUndirected(nodes, edges)
	reporter := progress.NewReporter(sink, procedure)

	f := &spanningForest{
		adj:          adj,
		discovery:    make(map[string]int, len(nodes)),
		parent:       make(map[string]int, len(nodes)),
		treeChildren: make(map[string][]string, len(nodes)),
	}

	var counter int
	var postorder []string

	for _, n := range nodes {
		if _, ok := f.discovery[n.ID]; ok {
			continue
		}

		f.discovery[n.ID] = counter
		f.parent[n.ID] = -1
		counter++
		frames := []dfsFrame{{id: n.ID}}

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			nbrs := f.adj[top.id]

			advanced := false
			for top.edgeIdx < len(nbrs) {
				nb := nbrs[top.edgeIdx]
				top.edgeIdx++
				reporter.Tick(1)

				if _, visited := f.discovery[nb]; visited {
					continue
				}
				f.discovery[nb] = counter
				f.parent[nb] = f.discovery[top.id]
				counter++
				f.treeChildren[top.id] = append(f.treeChildren[top.id], nb)
				frames = append(frames, dfsFrame{id: nb})
				advanced = true
				break
			}
			if advanced {
				continue
			}

			postorder = append(postorder, top.id)
			frames = frames[:len(frames)-1]
		}
	}

	f.postorder = postorder

	return f
}

// isRoot reports whether v has no tree parent.
func (f *spanningForest) isRoot(v string) bool { return f.parent[v] == -1 }

// computeLow runs pass 2 of §4.C4.3: walking the postorder sequence so
// every tree child's low value is folded into its parent before the parent
// is itself processed, exactly as bridges.go and articulation.go both need.
func (f *spanningForest) computeLow() map[string]int {
	low := make(map[string]int, len(f.discovery))
	for id, d := range f.discovery {
		low[id] = d
	}

	for _, v := range f.postorder {
		dv := f.discovery[v]
		for _, w := range f.adj[v] {
			if f.parent[w] == dv {
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if f.discovery[w] != f.parent[v] {
				if f.discovery[w] < low[v] {
					low[v] = f.discovery[w]
				}
			}
		}
	}

	return low
}
