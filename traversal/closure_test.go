package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit/graphkit/graphmodel"
)

func TestAncestorDescendant_S1(t *testing.T) {
	nodes, edges := s1Graph()
	got := AncestorDescendant(nodes, edges, nil)

	byID := make(map[string]ClosureResult, len(got))
	for _, r := range got {
		byID[r.ID] = r
	}

	a := byID["A"]
	assert.Empty(t, a.Ancestors)
	assert.ElementsMatch(t, []string{"B", "C", "D", "E"}, a.Descendants)

	d := byID["D"]
	assert.ElementsMatch(t, []string{"B", "A"}, d.Ancestors)
	assert.Empty(t, d.Descendants)

	b := byID["B"]
	assert.Equal(t, []string{"A"}, b.Ancestors)
	assert.ElementsMatch(t, []string{"D", "E"}, b.Descendants)
}

// TestAncestorDescendant_ReachableIsConcatenation checks that
// ReachableNodes is exactly Ancestors followed by Descendants, never a
// deduplicated union.
func TestAncestorDescendant_ReachableIsConcatenation(t *testing.T) {
	nodes, edges := s1Graph()
	got := AncestorDescendant(nodes, edges, nil)

	for _, r := range got {
		want := append(append([]string(nil), r.Ancestors...), r.Descendants...)
		assert.Equal(t, want, r.ReachableNodes)
	}
}

func TestAncestorDescendant_IsolatedNodeHasEmptyClosure(t *testing.T) {
	nodes := []graphmodel.Node{node("Z", "t")}
	got := AncestorDescendant(nodes, nil, nil)

	require.Len(t, got, 1)
	assert.Empty(t, got[0].Ancestors)
	assert.Empty(t, got[0].Descendants)
	assert.Empty(t, got[0].ReachableNodes)
}
