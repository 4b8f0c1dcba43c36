package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit/graphkit/graphmodel"
)

func TestStrongSubgraphExtraction_NoFilterReturnsEverySCC(t *testing.T) {
	nodes := []graphmodel.Node{
		node("0", "ta"), node("1", "tb"), node("2", "tb"), node("3", "tc"), node("4", "tc"),
	}
	edges := []graphmodel.Edge{
		edge("1", "0", "x"),
		edge("0", "2", "y"),
		edge("2", "1", "x"),
		edge("0", "3", "z"),
		edge("3", "4", "z"),
	}

	got := StrongSubgraphExtraction(nodes, edges, nil, nil, nil)
	require.Len(t, got, 3)

	big := got[2]
	assert.ElementsMatch(t, []string{"0", "1", "2"}, big.Nodes)
	assert.ElementsMatch(t, []string{"ta", "tb"}, big.NodeTypes)
	assert.ElementsMatch(t, []string{"x", "y"}, big.EdgeTypes)
	assert.Empty(t, big.SourceNodes, "every member of a 3-cycle has an incoming edge within the SCC")
	assert.Empty(t, big.TargetNodes)
}

func TestStrongSubgraphExtraction_NodeTypeFilterExcludesNonMatchingSCCs(t *testing.T) {
	nodes := []graphmodel.Node{node("A", "ta"), node("B", "ta"), node("C", "tb")}
	edges := []graphmodel.Edge{
		edge("A", "B", "e"),
		edge("B", "A", "e"),
	}

	got := StrongSubgraphExtraction(nodes, edges, [][]string{{"tb"}}, nil, nil)
	require.Len(t, got, 1)
	assert.ElementsMatch(t, []string{"C"}, got[0].Nodes)

	got = StrongSubgraphExtraction(nodes, edges, [][]string{{"ta"}}, nil, nil)
	require.Len(t, got, 1)
	assert.ElementsMatch(t, []string{"A", "B"}, got[0].Nodes)
}
