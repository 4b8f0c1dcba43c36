package registry

import "github.com/graphkit/graphkit/graphmodel"

// graphRequest is embedded by every request shape: the node/edge records
// every kernel operates on.
type graphRequest struct {
	Nodes []graphmodel.Node `json:"nodes"`
	Edges []graphmodel.Edge `json:"edges"`
}

type sourceRequest struct {
	graphRequest
	SourceID string `json:"source_id"`
}

type trackedRequest struct {
	graphRequest
	SourceID string `json:"source_id"`
	Limit    *int   `json:"limit,omitempty"`
}

type cycleRequest struct {
	graphRequest
	FindAll bool `json:"find_all"`
}

type pathRequest struct {
	graphRequest
	Source string `json:"source"`
	Target string `json:"target"`
}

type typedSubgraphRequest struct {
	graphRequest
	SourceNodeTypes []string `json:"source_node_types"`
	TargetNodeTypes []string `json:"target_node_types"`
}

type strongSubgraphRequest struct {
	graphRequest
	RequiredNodeTypeSets [][]string `json:"required_node_type_sets"`
	RequiredEdgeTypeSets [][]string `json:"required_edge_type_sets"`
}

type completenessRequest struct {
	graphRequest
	Patterns []workflowPattern `json:"patterns"`
}

type workflowPattern struct {
	StartTypes []string `json:"start_types"`
	EndTypes   []string `json:"end_types"`
}

type pathStatsRequest struct {
	graphRequest
	SourceID string `json:"source_id"`
}
