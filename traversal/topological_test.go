package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphkit/graphkit/graphmodel"
)

func TestTopologicalSort_S3(t *testing.T) {
	nodes := []graphmodel.Node{node("A", "t"), node("B", "t"), node("C", "t"), node("D", "t")}
	edges := []graphmodel.Edge{
		edge("A", "B", "e"),
		edge("A", "C", "e"),
		edge("B", "D", "e"),
		edge("C", "D", "e"),
	}

	got := TopologicalSort(nodes, edges, nil)

	want := []TopoEntry{
		{ID: "A", TopoOrder: 0, Layer: 0},
		{ID: "B", TopoOrder: 1, Layer: 1},
		{ID: "C", TopoOrder: 2, Layer: 1},
		{ID: "D", TopoOrder: 3, Layer: 2},
	}
	assert.Equal(t, want, got)
}

func TestTopologicalSort_OmitsCyclicNodes(t *testing.T) {
	nodes := []graphmodel.Node{node("A", "t"), node("B", "t"), node("C", "t")}
	edges := []graphmodel.Edge{
		edge("A", "B", "e"),
		edge("B", "C", "e"),
		edge("C", "B", "e"),
	}

	got := TopologicalSort(nodes, edges, nil)

	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"A"}, ids)
}

// TestTopologicalSort_RespectsEdgeOrder checks that every edge (u,v) has
// TopoOrder(u) < TopoOrder(v).
func TestTopologicalSort_RespectsEdgeOrder(t *testing.T) {
	nodes := []graphmodel.Node{node("A", "t"), node("B", "t"), node("C", "t"), node("D", "t")}
	edges := []graphmodel.Edge{
		edge("A", "B", "e"),
		edge("A", "C", "e"),
		edge("B", "D", "e"),
		edge("C", "D", "e"),
	}

	got := TopologicalSort(nodes, edges, nil)
	order := make(map[string]uint64, len(got))
	for _, e := range got {
		order[e.ID] = e.TopoOrder
	}

	for _, e := range edges {
		assert.Less(t, order[e.From], order[e.To])
	}
}
