package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphkit/graphkit/graphmodel"
)

// s1Graph builds a small BFS tree: A,B,C,D,E with A→B, A→C, B→D, B→E.
func s1Graph() ([]graphmodel.Node, []graphmodel.Edge) {
	nodes := []graphmodel.Node{node("A", "t"), node("B", "t"), node("C", "t"), node("D", "t"), node("E", "t")}
	edges := []graphmodel.Edge{
		edge("A", "B", "e"),
		edge("A", "C", "e"),
		edge("B", "D", "e"),
		edge("B", "E", "e"),
	}

	return nodes, edges
}

func TestBFS_S1(t *testing.T) {
	nodes, edges := s1Graph()
	got := BFS(nodes, edges, "A", nil)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, got)
}

func TestBFS_SourceWithNoOutgoingEdges(t *testing.T) {
	nodes := []graphmodel.Node{node("Z", "t")}
	got := BFS(nodes, nil, "Z", nil)
	assert.Equal(t, []string{"Z"}, got)
}

func TestBFS_SourceNotInNodeList(t *testing.T) {
	// Source absent from the node list entirely: BFS still emits it first.
	got := BFS(nil, []graphmodel.Edge{edge("X", "Y", "e")}, "X", nil)
	assert.Equal(t, []string{"X", "Y"}, got)
}

func TestBFS_FollowsDanglingEdges(t *testing.T) {
	nodes := []graphmodel.Node{node("A", "t")}
	edges := []graphmodel.Edge{edge("A", "ghost", "e")}
	got := BFS(nodes, edges, "A", nil)
	assert.Equal(t, []string{"A", "ghost"}, got)
}

func TestBFS_ParallelEdgesEmittedOnce(t *testing.T) {
	nodes := []graphmodel.Node{node("A", "t"), node("B", "t")}
	edges := []graphmodel.Edge{edge("A", "B", "e1"), edge("A", "B", "e2")}
	got := BFS(nodes, edges, "A", nil)
	assert.Equal(t, []string{"A", "B"}, got)
}

// TestBFS_LevelsMonotonic checks that for every edge (u,v) of the S1 tree,
// v is emitted no earlier than u.
func TestBFS_LevelsMonotonic(t *testing.T) {
	nodes, edges := s1Graph()
	order := BFS(nodes, edges, "A", nil)

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	for _, e := range edges {
		assert.LessOrEqual(t, pos[e.From], pos[e.To], "edge %s->%s violates BFS emission order", e.From, e.To)
	}
}
