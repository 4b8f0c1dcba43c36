package registry

import (
	"encoding/json"
	"fmt"

	"github.com/graphkit/graphkit/aggregation"
	"github.com/graphkit/graphkit/analysis"
	"github.com/graphkit/graphkit/connectivity"
	"github.com/graphkit/graphkit/flow"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/paths"
	"github.com/graphkit/graphkit/progress"
	"github.com/graphkit/graphkit/traversal"
)

// decode unmarshals payload into *req and runs the standard precondition
// validation every procedure shares: struct-tag checks on every node and
// edge record. A procedure's own kernel-level checks (negative weight,
// empty required type filter) run after this, inside the kernel call
// itself.
func decode(payload json.RawMessage, req interface{ graph() *graphRequest }) error {
	if err := json.Unmarshal(payload, req); err != nil {
		return fmt.Errorf("%w: %v", graphmodel.ErrInvalidArgument, err)
	}
	g := req.graph()
	if err := graphmodel.ValidateNodes(g.Nodes); err != nil {
		return err
	}
	return graphmodel.ValidateEdges(g.Edges)
}

func (r *graphRequest) graph() *graphRequest { return r }

// trackedOptionsFrom translates a decoded, possibly-absent limit field into
// the TrackedOption the kernel expects.
func trackedOptionsFrom(limit *int) []traversal.TrackedOption {
	if limit == nil {
		return nil
	}
	return []traversal.TrackedOption{traversal.WithLimit(*limit)}
}

// cycleOptionsFrom translates a decoded find_all field into the
// CycleOption the kernel expects.
func cycleOptionsFrom(findAll bool) []traversal.CycleOption {
	if !findAll {
		return nil
	}
	return []traversal.CycleOption{traversal.WithFindAllCycles()}
}

func buildProcedures(sink progress.Sink) []Procedure {
	return []Procedure{
		{
			Name:     "graph_bfs",
			Describe: ProcedureDescription{Input: "{nodes, edges, source_id}", Output: "[]string (visit order)"},
			Func: func(payload json.RawMessage) (any, error) {
				var req sourceRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return traversal.BFS(req.Nodes, req.Edges, req.SourceID, sink), nil
			},
		},
		{
			Name:     "graph_dfs",
			Describe: ProcedureDescription{Input: "{nodes, edges, source_id}", Output: "[]string (visit order)"},
			Func: func(payload json.RawMessage) (any, error) {
				var req sourceRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return traversal.DFS(req.Nodes, req.Edges, req.SourceID, sink), nil
			},
		},
		{
			Name:     "graph_tracked_bfs",
			Describe: ProcedureDescription{Input: "{nodes, edges, source_id, limit?}", Output: "[]traversal.TrackedNode"},
			Func: func(payload json.RawMessage) (any, error) {
				var req trackedRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return traversal.TrackedBFS(req.Nodes, req.Edges, req.SourceID, sink, trackedOptionsFrom(req.Limit)...), nil
			},
		},
		{
			Name:     "graph_tracked_dfs",
			Describe: ProcedureDescription{Input: "{nodes, edges, source_id, limit?}", Output: "[]traversal.TrackedNode"},
			Func: func(payload json.RawMessage) (any, error) {
				var req trackedRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return traversal.TrackedDFS(req.Nodes, req.Edges, req.SourceID, sink, trackedOptionsFrom(req.Limit)...), nil
			},
		},
		{
			Name:     "graph_topological_sort",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "[]traversal.TopoEntry"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return traversal.TopologicalSort(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_cycle_detection",
			Describe: ProcedureDescription{Input: "{nodes, edges, find_all}", Output: "*traversal.CycleResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req cycleRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return traversal.DetectCycles(req.Nodes, req.Edges, sink, cycleOptionsFrom(req.FindAll)...), nil
			},
		},
		{
			Name:     "graph_ancestor_descendant",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "[]traversal.ClosureResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return traversal.AncestorDescendant(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_connected_components",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "{assignments []connectivity.ComponentAssignment, components []connectivity.ComponentInfo}"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				assignments, components := connectivity.ConnectedComponents(req.Nodes, req.Edges, sink)
				return struct {
					Assignments []connectivity.ComponentAssignment `json:"assignments"`
					Components  []connectivity.ComponentInfo       `json:"components"`
				}{assignments, components}, nil
			},
		},
		{
			Name:     "graph_strongly_connected_components",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "[][]string (one slice per SCC)"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return connectivity.StronglyConnectedComponents(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_bridges",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "[]connectivity.Bridge"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return connectivity.Bridges(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_articulation_points",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "[]string"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return connectivity.ArticulationPoints(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_dynamic_reachability",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "[]traversal.ClosureResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return connectivity.DynamicReachability(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_strong_subgraph_extraction",
			Describe: ProcedureDescription{Input: "{nodes, edges, required_node_type_sets, required_edge_type_sets}", Output: "[]connectivity.StrongSubgraph"},
			Func: func(payload json.RawMessage) (any, error) {
				var req strongSubgraphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return connectivity.StrongSubgraphExtraction(req.Nodes, req.Edges, req.RequiredNodeTypeSets, req.RequiredEdgeTypeSets, sink), nil
			},
		},
		{
			Name:     "graph_all_simple_paths",
			Describe: ProcedureDescription{Input: "{nodes, edges, source, target}", Output: "{paths [][]string, path_count uint64}"},
			Func: func(payload json.RawMessage) (any, error) {
				var req pathRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				found, count := paths.AllSimplePaths(req.Nodes, req.Edges, req.Source, req.Target, sink)
				return struct {
					Paths     [][]string `json:"paths"`
					PathCount uint64     `json:"path_count"`
				}{found, count}, nil
			},
		},
		{
			Name:     "graph_dijkstra",
			Describe: ProcedureDescription{Input: "{nodes, edges, source, target}", Output: "paths.ShortestPathResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req pathRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return paths.ShortestPath(req.Nodes, req.Edges, req.Source, req.Target, sink)
			},
		},
		{
			Name:     "graph_critical_path",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "paths.CriticalPathResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return paths.CriticalPath(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_subgraph_from_sources",
			Describe: ProcedureDescription{Input: "{nodes, edges, source_node_types, target_node_types}", Output: "[]paths.TypedSubgraph"},
			Func: func(payload json.RawMessage) (any, error) {
				var req typedSubgraphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return paths.SubgraphFromSources(req.Nodes, req.Edges, req.SourceNodeTypes, req.TargetNodeTypes, sink)
			},
		},
		{
			Name:     "graph_subgraph_from_targets",
			Describe: ProcedureDescription{Input: "{nodes, edges, source_node_types, target_node_types}", Output: "[]paths.TypedSubgraph"},
			Func: func(payload json.RawMessage) (any, error) {
				var req typedSubgraphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return paths.SubgraphFromTargets(req.Nodes, req.Edges, req.SourceNodeTypes, req.TargetNodeTypes, sink)
			},
		},
		{
			Name:     "graph_bottom_up",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "[]aggregation.BottomUpResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return aggregation.BottomUp(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_temporal_bottom_up",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "[]aggregation.BottomUpResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return aggregation.TemporalBottomUp(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_top_down",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "[]aggregation.TopDownResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return aggregation.TopDown(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_weighted_aggregation",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "[]aggregation.WeightedResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return aggregation.Weighted(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_group_dictionary",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "[]aggregation.GroupDictResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return aggregation.GroupDictionary(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_type_level_aggregation",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "aggregation.TypeLevelResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return aggregation.TypeLevel(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_flow_conservation",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "flow.ConservationResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return flow.CheckConservation(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_volume_flow",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "flow.VolumeResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return flow.VolumeFlow(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_validation",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "analysis.ValidationResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				// graph_validation is deliberately run even on structurally
				// invalid input (dangling edges, duplicate ids): that's the
				// condition it reports on, so it only decodes the JSON and
				// skips the shared struct-tag validation step.
				if err := json.Unmarshal(payload, &req); err != nil {
					return nil, fmt.Errorf("%w: %v", graphmodel.ErrInvalidArgument, err)
				}
				return analysis.Validate(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_type_stats",
			Describe: ProcedureDescription{Input: "{nodes, edges}", Output: "analysis.TypeStatsResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req graphRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return analysis.TypeStats(req.Nodes, req.Edges, sink), nil
			},
		},
		{
			Name:     "graph_path_stats",
			Describe: ProcedureDescription{Input: "{nodes, edges, source_id}", Output: "analysis.PathStatsResult"},
			Func: func(payload json.RawMessage) (any, error) {
				var req pathStatsRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				return analysis.PathStats(req.Nodes, req.Edges, req.SourceID, sink), nil
			},
		},
		{
			Name:     "graph_check_completeness",
			Describe: ProcedureDescription{Input: "{nodes, edges, patterns: [{start_types, end_types}]}", Output: "[]analysis.PatternCompleteness"},
			Func: func(payload json.RawMessage) (any, error) {
				var req completenessRequest
				if err := decode(payload, &req); err != nil {
					return nil, err
				}
				patterns := make([]analysis.WorkflowPattern, len(req.Patterns))
				for i, p := range req.Patterns {
					patterns[i] = analysis.WorkflowPattern{StartTypes: p.StartTypes, EndTypes: p.EndTypes}
				}
				return analysis.CheckCompleteness(req.Nodes, req.Edges, patterns, sink), nil
			},
		},
	}
}
