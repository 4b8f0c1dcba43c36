package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit/graphkit/graphmodel"
)

func volumeEdge(from, to string, v float64) graphmodel.Edge {
	return graphmodel.Edge{From: from, To: to, Type: "e", Volume: &v}
}

func TestVolumeFlow_SourceAndSinkLoss(t *testing.T) {
	nodes := []graphmodel.Node{
		{ID: "Source", Type: "t"},
		{ID: "Middle", Type: "t"},
		{ID: "Sink", Type: "t"},
	}
	edges := []graphmodel.Edge{
		volumeEdge("Source", "Middle", 100),
		volumeEdge("Middle", "Sink", 70),
	}

	got := VolumeFlow(nodes, edges, nil)
	byID := make(map[string]NodeVolume, len(got.Nodes))
	for _, nv := range got.Nodes {
		byID[nv.ID] = nv
	}

	require.Contains(t, byID, "Source")
	assert.Equal(t, -100.0, byID["Source"].ActualLoss)
	assert.Equal(t, 30.0, byID["Middle"].ActualLoss)
	assert.Equal(t, 70.0, byID["Sink"].ActualLoss)

	assert.Equal(t, 100.0, got.TotalInputVolume)
	assert.Equal(t, 70.0, got.TotalOutputVolume)
	assert.Equal(t, 30.0, got.TotalSystemLoss)
}
