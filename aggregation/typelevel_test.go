package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit/graphkit/graphmodel"
)

func TestTypeLevel_ExcludesOrphanedTypesAndComputesProbability(t *testing.T) {
	nodes := []graphmodel.Node{
		valueNode("A1", "alpha", 0),
		valueNode("A2", "alpha", 0),
		valueNode("B1", "beta", 0),
		valueNode("Z", "isolated", 0),
	}
	edges := []graphmodel.Edge{
		edge("A1", "B1", "e"),
		edge("A2", "B1", "e"),
		edge("A1", "A2", "e"),
	}

	got := TypeLevel(nodes, edges, nil)

	require.Len(t, got.AggregateNodes, 2)
	assert.Equal(t, "alpha", got.AggregateNodes[0].Type)
	assert.EqualValues(t, 2, got.AggregateNodes[0].NodeCount)
	assert.Equal(t, "beta", got.AggregateNodes[1].Type)
	assert.EqualValues(t, 1, got.AggregateNodes[1].NodeCount)

	require.Len(t, got.AggregateEdges, 2)
	assert.Equal(t, "alpha", got.AggregateEdges[0].FromType)
	assert.Equal(t, "alpha", got.AggregateEdges[0].ToType)
	assert.EqualValues(t, 1, got.AggregateEdges[0].TransitionCount)
	assert.InDelta(t, 1.0/3.0, got.AggregateEdges[0].TransitionProbability, 1e-9)

	assert.Equal(t, "alpha", got.AggregateEdges[1].FromType)
	assert.Equal(t, "beta", got.AggregateEdges[1].ToType)
	assert.EqualValues(t, 2, got.AggregateEdges[1].TransitionCount)
	assert.InDelta(t, 2.0/3.0, got.AggregateEdges[1].TransitionProbability, 1e-9)
}
