package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit/graphkit/graphmodel"
)

func TestConnectedComponents_TwoIslandsAndAnIsolate(t *testing.T) {
	nodes := []graphmodel.Node{
		node("A", "t"), node("B", "t"), node("C", "t"), node("D", "t"),
	}
	edges := []graphmodel.Edge{edge("A", "B", "e")}

	assignments, infos := ConnectedComponents(nodes, edges, nil)
	require.Len(t, infos, 3)

	byNode := make(map[string]string, len(assignments))
	for _, a := range assignments {
		byNode[a.NodeID] = a.ComponentID
	}
	assert.Equal(t, byNode["A"], byNode["B"])
	assert.NotEqual(t, byNode["A"], byNode["C"])
	assert.NotEqual(t, byNode["C"], byNode["D"])

	assert.Equal(t, "comp_0", infos[0].ComponentID)
	assert.EqualValues(t, 2, infos[0].Size)
	assert.EqualValues(t, 1, infos[1].Size)
	assert.EqualValues(t, 1, infos[2].Size)
}

func TestConnectedComponents_TreatsEdgesAsUndirected(t *testing.T) {
	nodes := []graphmodel.Node{node("A", "t"), node("B", "t")}
	edges := []graphmodel.Edge{edge("B", "A", "e")}

	_, infos := ConnectedComponents(nodes, edges, nil)
	require.Len(t, infos, 1)
	assert.EqualValues(t, 2, infos[0].Size)
}
