package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphkit/graphkit/graphmodel"
)

func TestGroupDictionary_SumsAttributesAcrossDescendants(t *testing.T) {
	nodes := []graphmodel.Node{
		{ID: "A", Type: "t", Attributes: map[string]float64{"cost": 1, "risk": 5}},
		{ID: "B", Type: "t", Attributes: map[string]float64{"cost": 2}},
	}
	edges := []graphmodel.Edge{edge("A", "B", "e")}

	got := GroupDictionary(nodes, edges, nil)
	byID := make(map[string]GroupDictResult, len(got))
	for _, r := range got {
		byID[r.ID] = r
	}

	a := byID["A"]
	assert.Equal(t, 3.0, a.Aggregated["cost"])
	assert.Equal(t, 5.0, a.Aggregated["risk"])

	b := byID["B"]
	assert.Equal(t, 2.0, b.Aggregated["cost"])
	assert.Equal(t, 0.0, b.Aggregated["risk"])
}
