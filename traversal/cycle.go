package traversal

import (
	"github.com/graphkit/graphkit/adjacency"
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// CycleResult is the outcome of DetectCycles.
type CycleResult struct {
	HasCycle   bool
	CycleNodes []string
}

const (
	colorWhite = 0
	colorGray  = 1
	colorBlack = 2
)

// cycleFrame is one explicit DFS stack frame: id is the node being
// explored and edgeIdx is how far through its forward neighbor list the
// scan has progressed. Keeping edgeIdx on the frame (rather than recursing)
// is what lets this run on a million-node graph without a native stack.
type cycleFrame struct {
	id      string
	edgeIdx int
}

// CycleOption configures cycle-detection behavior via functional
// arguments.
type CycleOption func(*CycleOptions)

// CycleOptions holds parameters customizing DetectCycles.
type CycleOptions struct {
	// FindAll, when true, keeps exploring after the first cycle is found
	// and accumulates every back-edge's endpoint pair instead of
	// returning immediately.
	FindAll bool
}

// DefaultCycleOptions returns CycleOptions that stop at the first cycle
// found.
func DefaultCycleOptions() CycleOptions {
	return CycleOptions{FindAll: false}
}

// WithFindAllCycles makes DetectCycles keep exploring after the first
// cycle and accumulate every back-edge's endpoint pair.
func WithFindAllCycles() CycleOption {
	return func(o *CycleOptions) {
		o.FindAll = true
	}
}

// DetectCycles runs three-color DFS cycle detection. By default it stops
// at the first cycle found; pass WithFindAllCycles to keep exploring and
// accumulate every back-edge's endpoint pair instead. Edges to ids absent
// from the node list are ignored.
func DetectCycles(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink, opts ...CycleOption) *CycleResult {
	options := DefaultCycleOptions()
	for _, opt := range opts {
		opt(&options)
	}
	findAll := options.FindAll

	types := adjacency.NodeTypes(nodes)
	adj := adjacency.Build(edges)
	reporter := progress.NewReporter(sink, "graph_cycle_detection")

	ids := make([]string, 0, len(nodes))
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if !seen[n.ID] {
			seen[n.ID] = true
			ids = append(ids, n.ID)
		}
	}

	state := make(map[string]int, len(ids))
	hasCycle := false
	var cycleNodes []string

	for _, start := range ids {
		if state[start] != colorWhite {
			continue
		}

		state[start] = colorGray
		stack := []cycleFrame{{id: start}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := adj.Forward[top.id]

			advanced := false
			for top.edgeIdx < len(nbrs) {
				nb := nbrs[top.edgeIdx]
				top.edgeIdx++
				reporter.Tick(1)

				if _, ok := types[nb]; !ok {
					continue
				}

				switch state[nb] {
				case colorWhite:
					state[nb] = colorGray
					stack = append(stack, cycleFrame{id: nb})
					advanced = true
				case colorGray:
					hasCycle = true
					cycleNodes = append(cycleNodes, nb, top.id)
					if !findAll {
						return &CycleResult{HasCycle: true, CycleNodes: cycleNodes}
					}
				case colorBlack:
					// fully explored elsewhere; not a back edge
				}

				if advanced {
					break
				}
			}
			if advanced {
				continue
			}

			state[top.id] = colorBlack
			stack = stack[:len(stack)-1]
		}
	}

	return &CycleResult{HasCycle: hasCycle, CycleNodes: cycleNodes}
}
