package paths

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// ShortestPathResult is the output of ShortestPath.
type ShortestPathResult struct {
	Path []string
	Cost float64
}

// pqEntry is one (node, tentative distance) pair held in the min-heap.
// Entries are pushed lazily on every relaxation rather than decreasing a
// key in place; stale entries (superseded by a shorter distance already
// finalized) are discarded when popped.
type pqEntry struct {
	id   string
	dist float64
}

type distHeap []pqEntry

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(pqEntry)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// ShortestPath runs Dijkstra from source to target over weighted edges.
// Each edge's weight comes from graphmodel.Edge.EffectiveWeight (absent
// weight defaults to 0). Distances start at +Inf except the source at 0;
// the search terminates as soon as target is popped finalized. If target
// is unreachable, Path is empty and Cost is +Inf. A negative edge weight
// fails fast with graphmodel.ErrInvalidArgument rather than producing an
// undefined result, since Dijkstra's correctness depends on non-negative
// weights.
func ShortestPath(nodes []graphmodel.Node, edges []graphmodel.Edge, source, target string, sink progress.Sink) (ShortestPathResult, error) {
	for i, e := range edges {
		if e.EffectiveWeight() < 0 {
			return ShortestPathResult{}, fmt.Errorf("%w: edge[%d]: negative weight", graphmodel.ErrInvalidArgument, i)
		}
	}

	adj := adjacency.Build(edges)
	weight := make(map[[2]string]float64, len(edges))
	for _, e := range edges {
		w := e.EffectiveWeight()
		key := [2]string{e.From, e.To}
		if existing, ok := weight[key]; !ok || w < existing {
			weight[key] = w
		}
	}
	reporter := progress.NewReporter(sink, "graph_shortest_path")

	dist := make(map[string]float64, len(nodes))
	prev := make(map[string]string, len(nodes))
	for _, n := range nodes {
		dist[n.ID] = math.Inf(1)
	}
	dist[source] = 0

	visited := make(map[string]bool, len(nodes))
	pq := &distHeap{{id: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqEntry)
		reporter.Tick(1)

		if visited[top.id] {
			continue
		}
		visited[top.id] = true

		if top.id == target {
			break
		}

		for _, nb := range adj.Forward[top.id] {
			if visited[nb] {
				continue
			}
			w := weight[[2]string{top.id, nb}]
			alt := dist[top.id] + w
			if alt < dist[nb] {
				dist[nb] = alt
				prev[nb] = top.id
				heap.Push(pq, pqEntry{id: nb, dist: alt})
			}
		}
	}

	cost := dist[target]
	if _, known := dist[target]; !known {
		cost = math.Inf(1)
	}
	if math.IsInf(cost, 1) {
		return ShortestPathResult{Path: nil, Cost: math.Inf(1)}, nil
	}

	var path []string
	for at := target; ; {
		path = append([]string{at}, path...)
		if at == source {
			break
		}
		parent, ok := prev[at]
		if !ok {
			return ShortestPathResult{Path: nil, Cost: math.Inf(1)}, nil
		}
		at = parent
	}

	return ShortestPathResult{Path: path, Cost: cost}, nil
}
