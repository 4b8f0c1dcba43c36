// Package adjacency builds the forward/reverse neighbor indices every
// graphkit kernel consumes before it runs its own logic.
//
// This is the sole hot path for graph construction shared by every
// algorithm: one O(|E|) pass builds adjacency once, from a flat edge
// slice, instead of each kernel walking neighbors ad hoc against a
// mutex-guarded graph type.
package adjacency

import "github.com/graphkit/graphkit/graphmodel"

// List is the adjacency built from an edge slice: Forward[id] is the
// ordered sequence of ids reachable by a single outgoing edge from id (in
// edge-insertion order, parallel edges repeated); Reverse[id] is the
// symmetric predecessor sequence. A node id is a key only if it appears as
// that edge's endpoint — callers needing the full node universe also
// consult the node list.
type List struct {
	Forward map[string][]string
	Reverse map[string][]string

	// Edges is the original edge slice, preserved so kernels that need the
	// Edge records themselves (not just neighbor ids) don't need a second
	// pass — e.g. tracked traversal's parent_edge_types.
	Edges []graphmodel.Edge
}

// Build constructs forward and reverse adjacency from edges in O(|E|) time
// and space. It never sorts or deduplicates its output: parallel edges
// appear once per occurrence in both Forward and Reverse, and callers that
// need set semantics (traversal visited-sets, undirected dedup in bridge
// detection) apply that themselves.
func Build(edges []graphmodel.Edge) *List {
	forward := make(map[string][]string, len(edges))
	reverse := make(map[string][]string, len(edges))

	for _, e := range edges {
		forward[e.From] = append(forward[e.From], e.To)
		reverse[e.To] = append(reverse[e.To], e.From)
	}

	return &List{Forward: forward, Reverse: reverse, Edges: edges}
}

// NodeTypes builds an id→type lookup from a node list. Duplicate ids are
// permitted in input but only the first occurrence is canonical, so later
// duplicates are ignored here.
func NodeTypes(nodes []graphmodel.Node) map[string]string {
	types := make(map[string]string, len(nodes))
	for _, n := range nodes {
		if _, exists := types[n.ID]; !exists {
			types[n.ID] = n.Type
		}
	}

	return types
}

// EdgesFrom returns, for edges leaving "from" and landing on "to", every
// edge.Type in edge-insertion order — used by tracked traversal to compute
// parent_edge_types: the ordered sequence of the type field of every edge
// from the established parent to this node.
func (l *List) EdgesFrom(from, to string) []string {
	var types []string
	for _, e := range l.Edges {
		if e.From == from && e.To == to {
			types = append(types, e.Type)
		}
	}

	return types
}
