package paths

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit/graphkit/graphmodel"
)

func TestShortestPath_S6(t *testing.T) {
	nodes := []graphmodel.Node{node("A", "t"), node("B", "t"), node("C", "t"), node("D", "t")}
	edges := []graphmodel.Edge{
		weightedEdge("A", "B", 10),
		weightedEdge("A", "C", 2),
		weightedEdge("B", "D", 1),
		weightedEdge("C", "D", 3),
	}

	got, err := ShortestPath(nodes, edges, "A", "D", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, got.Path)
	assert.Equal(t, 5.0, got.Cost)
}

func TestShortestPath_UnreachableTargetIsInfiniteCostEmptyPath(t *testing.T) {
	nodes := []graphmodel.Node{node("A", "t"), node("B", "t")}
	got, err := ShortestPath(nodes, nil, "A", "B", nil)
	require.NoError(t, err)
	assert.Empty(t, got.Path)
	assert.True(t, math.IsInf(got.Cost, 1))
}

func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	nodes := []graphmodel.Node{node("A", "t")}
	got, err := ShortestPath(nodes, nil, "A", "A", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, got.Path)
	assert.Equal(t, 0.0, got.Cost)
}

func TestShortestPath_AbsentWeightDefaultsToZero(t *testing.T) {
	nodes := []graphmodel.Node{node("A", "t"), node("B", "t")}
	edges := []graphmodel.Edge{edge("A", "B", "e")}
	got, err := ShortestPath(nodes, edges, "A", "B", nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Cost)
}

func TestShortestPath_NegativeWeightIsInvalidArgument(t *testing.T) {
	nodes := []graphmodel.Node{node("A", "t"), node("B", "t")}
	edges := []graphmodel.Edge{weightedEdge("A", "B", -1)}

	_, err := ShortestPath(nodes, edges, "A", "B", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graphmodel.ErrInvalidArgument))
}
