package registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit/graphkit/analysis"
	"github.com/graphkit/graphkit/graphmodel"
)

func TestRegistry_InvokeBFS(t *testing.T) {
	r := New(nil)

	payload := []byte(`{
		"nodes": [{"id":"A","type":"t"},{"id":"B","type":"t"},{"id":"C","type":"t"}],
		"edges": [{"from":"A","to":"B","type":"e"},{"from":"B","to":"C","type":"e"}],
		"source_id": "A"
	}`)

	got, err := r.Invoke("graph_bfs", payload, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestRegistry_InvokeUnknownProcedure(t *testing.T) {
	r := New(nil)
	_, err := r.Invoke("graph_nonexistent", []byte(`{}`), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphmodel.ErrInvalidArgument)
}

func TestRegistry_DescribeOnlySkipsDecodeAndExecution(t *testing.T) {
	r := New(nil)
	got, err := r.Invoke("graph_bfs", []byte(`not valid json`), true)
	require.NoError(t, err)
	assert.Equal(t, ProcedureDescription{Input: "{nodes, edges, source_id}", Output: "[]string (visit order)"}, got)
}

func TestRegistry_InvalidJSONIsInvalidArgument(t *testing.T) {
	r := New(nil)
	_, err := r.Invoke("graph_bfs", []byte(`not valid json`), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphmodel.ErrInvalidArgument)
}

func TestRegistry_NodeMissingRequiredFieldIsInvalidArgument(t *testing.T) {
	r := New(nil)
	payload := []byte(`{"nodes":[{"id":"","type":"t"}],"edges":[],"source_id":"A"}`)
	_, err := r.Invoke("graph_bfs", payload, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphmodel.ErrInvalidArgument)
}

func TestRegistry_DijkstraNegativeWeightIsInvalidArgument(t *testing.T) {
	r := New(nil)
	payload := []byte(`{
		"nodes": [{"id":"A","type":"t"},{"id":"B","type":"t"}],
		"edges": [{"from":"A","to":"B","type":"e","weight":-1}],
		"source": "A",
		"target": "B"
	}`)
	_, err := r.Invoke("graph_dijkstra", payload, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, graphmodel.ErrInvalidArgument)
}

func TestRegistry_ValidationRunsOnStructurallyInvalidGraph(t *testing.T) {
	r := New(nil)
	payload := []byte(`{
		"nodes": [{"id":"A","type":"t"}],
		"edges": [{"from":"A","to":"ghost","type":"e"}]
	}`)
	got, err := r.Invoke("graph_validation", payload, false)
	require.NoError(t, err)
	result, ok := got.(analysis.ValidationResult)
	require.True(t, ok)
	assert.Equal(t, uint64(1), result.DanglingEdgeCount)
}

func TestRegistry_NamesIncludesEveryKernel(t *testing.T) {
	r := New(nil)
	names := r.Names()
	assert.Len(t, names, 30)
	for _, want := range []string{
		"graph_bfs", "graph_dfs", "graph_tracked_bfs", "graph_tracked_dfs",
		"graph_topological_sort", "graph_cycle_detection", "graph_ancestor_descendant",
		"graph_connected_components", "graph_strongly_connected_components",
		"graph_bridges", "graph_articulation_points", "graph_dynamic_reachability",
		"graph_strong_subgraph_extraction", "graph_all_simple_paths", "graph_dijkstra",
		"graph_critical_path", "graph_subgraph_from_sources", "graph_subgraph_from_targets",
		"graph_bottom_up", "graph_temporal_bottom_up", "graph_top_down",
		"graph_weighted_aggregation", "graph_group_dictionary", "graph_type_level_aggregation",
		"graph_flow_conservation", "graph_volume_flow", "graph_validation",
		"graph_type_stats", "graph_path_stats", "graph_check_completeness",
	} {
		assert.Contains(t, names, want)
	}
}

func TestRegistry_CheckCompletenessDecodesPatterns(t *testing.T) {
	r := New(nil)
	payload := []byte(`{
		"nodes": [{"id":"A","type":"request"},{"id":"B","type":"response"}],
		"edges": [{"from":"A","to":"B","type":"e"}],
		"patterns": [{"start_types":["request"],"end_types":["response"]}]
	}`)
	got, err := r.Invoke("graph_check_completeness", payload, false)
	require.NoError(t, err)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "CompleteCount")
}
