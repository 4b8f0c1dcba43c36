package traversal

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// TrackedNode is one entry of a Tracked BFS/DFS result. ParentID and
// ParentType are nil for the source node (it has no parent);
// ParentEdgeTypes is nil whenever ParentID is nil.
type TrackedNode struct {
	ID              string
	Type            string
	VisitedOrder    uint64
	Depth           uint64
	ParentEdgeTypes []string
	ParentID        *string
	ParentType      *string
}

// trackedEmpty resolves the question of whether a tracked traversal whose
// source is absent from the node list should emit nothing or a single bare
// element: graphkit emits nothing, for consistency with the rest of the
// membership filter ("a traversal step to an id not in this lookup is
// skipped") — the source is a traversal step like any other, so it is
// filtered the same way. See DESIGN.md for the full rationale.
func trackedEmpty() []TrackedNode { return []TrackedNode{} }

// TrackedOption configures tracked traversal behavior via functional
// arguments.
type TrackedOption func(*TrackedOptions)

// TrackedOptions holds parameters customizing TrackedBFS/TrackedDFS.
type TrackedOptions struct {
	// Limit, when non-nil, suppresses emission of any node whose depth
	// would exceed it — but depth is still assigned and the traversal
	// still continues through those nodes so their own descendants are
	// correctly filtered too.
	Limit *int
}

// DefaultTrackedOptions returns TrackedOptions with no depth limit.
func DefaultTrackedOptions() TrackedOptions {
	return TrackedOptions{Limit: nil}
}

// WithLimit caps emission to nodes at depth <= limit.
func WithLimit(limit int) TrackedOption {
	return func(o *TrackedOptions) {
		o.Limit = &limit
	}
}

func resolveTrackedOptions(opts []TrackedOption) TrackedOptions {
	o := DefaultTrackedOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// TrackedBFS performs level-order BFS while recording depth, parent, and
// parent-edge-type metadata. See WithLimit for depth-based emission
// filtering.
func TrackedBFS(nodes []graphmodel.Node, edges []graphmodel.Edge, sourceID string, sink progress.Sink, opts ...TrackedOption) []TrackedNode {
	limit := resolveTrackedOptions(opts).Limit
	types := adjacency.NodeTypes(nodes)
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_tracked_bfs")

	if _, ok := types[sourceID]; !ok {
		return trackedEmpty()
	}

	visited := map[string]bool{sourceID: true}
	depth := map[string]int{sourceID: 0}

	result := make([]TrackedNode, 0, len(nodes))
	var order uint64

	result = append(result, TrackedNode{ID: sourceID, Type: types[sourceID], VisitedOrder: order, Depth: 0})
	order++

	queue := []string{sourceID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		d := depth[id]
		parentType := types[id]

		for _, nb := range adj.Forward[id] {
			reporter.Tick(1)
			if _, ok := types[nb]; !ok {
				continue // dangling edge: skip, subtree not explored
			}
			if visited[nb] {
				continue
			}
			visited[nb] = true
			nd := d + 1
			depth[nb] = nd
			queue = append(queue, nb)

			if limit != nil && nd > *limit {
				continue // depth assigned, descendants still filtered; not emitted
			}

			parentID := id
			pType := parentType
			result = append(result, TrackedNode{
				ID:              nb,
				Type:            types[nb],
				VisitedOrder:    order,
				Depth:           uint64(nd),
				ParentEdgeTypes: adj.EdgesFrom(id, nb),
				ParentID:        &parentID,
				ParentType:      &pType,
			})
			order++
		}
	}

	return result
}

// TrackedDFS performs depth-first traversal while recording depth, parent,
// and parent-edge-type metadata. Depth and parent are fixed at first
// discovery (the first time a node is found unvisited while exploring some
// node's neighbors), independent of pop order; emission happens at pop time
// with the same LIFO ordering as plain DFS, so TrackedDFS without
// limit/type filtering visits nodes in exactly the order DFS does. See
// WithLimit for depth-based emission filtering.
func TrackedDFS(nodes []graphmodel.Node, edges []graphmodel.Edge, sourceID string, sink progress.Sink, opts ...TrackedOption) []TrackedNode {
	limit := resolveTrackedOptions(opts).Limit
	types := adjacency.NodeTypes(nodes)
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_tracked_dfs")

	if _, ok := types[sourceID]; !ok {
		return trackedEmpty()
	}

	discoveredDepth := map[string]int{sourceID: 0}
	discoveredParent := map[string]string{}
	visited := map[string]bool{}

	result := make([]TrackedNode, 0, len(nodes))
	var order uint64

	stack := []string{sourceID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[id] {
			continue
		}
		visited[id] = true

		d := discoveredDepth[id]
		if limit == nil || d <= *limit {
			entry := TrackedNode{ID: id, Type: types[id], VisitedOrder: order, Depth: uint64(d)}
			if pid, ok := discoveredParent[id]; ok {
				parentID := pid
				parentType := types[pid]
				entry.ParentID = &parentID
				entry.ParentType = &parentType
				entry.ParentEdgeTypes = adj.EdgesFrom(pid, id)
			}
			result = append(result, entry)
			order++
		}

		for _, nb := range adj.Forward[id] {
			reporter.Tick(1)
			if _, ok := types[nb]; !ok {
				continue
			}
			if _, ok := discoveredDepth[nb]; !ok {
				discoveredDepth[nb] = d + 1
				discoveredParent[nb] = id
			}
			stack = append(stack, nb)
		}
	}

	return result
}
