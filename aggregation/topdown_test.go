package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphkit/graphkit/graphmodel"
)

func TestTopDown_DistributesEquallyToChildren(t *testing.T) {
	// Root A(10) splits evenly between B and C (two children): each gets +5.
	nodes := []graphmodel.Node{
		valueNode("A", "t", 10),
		valueNode("B", "t", 0),
		valueNode("C", "t", 0),
	}
	edges := []graphmodel.Edge{
		edge("A", "B", "e"),
		edge("A", "C", "e"),
	}

	got := TopDown(nodes, edges, nil)
	byID := make(map[string]TopDownResult, len(got))
	for _, r := range got {
		byID[r.ID] = r
	}

	assert.Equal(t, 10.0, byID["A"].AggregatedValue)
	assert.Equal(t, 5.0, byID["B"].AggregatedValue)
	assert.Equal(t, 5.0, byID["C"].AggregatedValue)
	assert.Equal(t, []string{"B", "A"}, byID["B"].ContributingNodes)
}

func TestTopDown_ChainAccumulates(t *testing.T) {
	nodes := []graphmodel.Node{
		valueNode("A", "t", 10),
		valueNode("B", "t", 1),
		valueNode("C", "t", 1),
	}
	edges := []graphmodel.Edge{
		edge("A", "B", "e"),
		edge("B", "C", "e"),
	}

	got := TopDown(nodes, edges, nil)
	byID := make(map[string]TopDownResult, len(got))
	for _, r := range got {
		byID[r.ID] = r
	}

	assert.Equal(t, 10.0, byID["A"].AggregatedValue)
	assert.Equal(t, 11.0, byID["B"].AggregatedValue)
	assert.Equal(t, 12.0, byID["C"].AggregatedValue)
	assert.Equal(t, []string{"C", "B", "A"}, byID["C"].ContributingNodes)
}
