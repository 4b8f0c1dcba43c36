package analysis

import (
	"sort"

	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// NodeTypeProblem is one entry of ValidationResult.ProblematicNodeTypes.
type NodeTypeProblem struct {
	Type          string
	OrphanedCount uint64
	TotalCount    uint64
	Percentage    float64
}

// EdgePatternProblem is one entry of ValidationResult.ProblematicEdgePatterns.
type EdgePatternProblem struct {
	FromType      string
	ToType        string
	DanglingCount uint64
	ValidCount    uint64
	FailureRate   float64
}

// ValidationResult is the output of Validate.
type ValidationResult struct {
	TotalNodeCount          uint64
	ValidNodeCount          uint64
	OrphanedNodeCount       uint64
	DuplicateNodeCount      uint64
	TotalEdgeCount          uint64
	ValidEdgeCount          uint64
	DanglingEdgeCount       uint64
	DuplicateEdgeCount      uint64
	NodeValidityRatio       float64
	EdgeValidityRatio       float64
	ProblematicNodeTypes    []NodeTypeProblem
	ProblematicEdgePatterns []EdgePatternProblem
}

const unknownType = "unknown"

// safeDivide returns 0 rather than NaN/Inf when denom is zero.
func safeDivide(num, denom float64) float64 {
	if denom == 0 {
		return 0
	}
	return num / denom
}

// Validate computes structural integrity counts and per-type breakdowns.
func Validate(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) ValidationResult {
	reporter := progress.NewReporter(sink, "graph_validation")

	firstType := make(map[string]string, len(nodes))
	firstSeen := make(map[string]bool, len(nodes))
	var uniqueIDs []string
	for _, n := range nodes {
		reporter.Tick(1)
		if !firstSeen[n.ID] {
			firstSeen[n.ID] = true
			firstType[n.ID] = n.Type
			uniqueIDs = append(uniqueIDs, n.ID)
		}
	}

	endpointOf := make(map[string]bool, len(edges))
	seenEdgePattern := make(map[[2]string]bool, len(edges))
	var uniqueValidPatterns int
	var danglingEdges uint64

	nodeTypeEdgeStats := make(map[[2]string]*EdgePatternProblem)

	for _, e := range edges {
		reporter.Tick(1)
		fromOK := firstSeen[e.From]
		toOK := firstSeen[e.To]

		fromType := unknownType
		if fromOK {
			fromType = firstType[e.From]
			endpointOf[e.From] = true
		}
		toType := unknownType
		if toOK {
			toType = firstType[e.To]
			endpointOf[e.To] = true
		}

		key := [2]string{fromType, toType}
		stat, ok := nodeTypeEdgeStats[key]
		if !ok {
			stat = &EdgePatternProblem{FromType: fromType, ToType: toType}
			nodeTypeEdgeStats[key] = stat
		}

		if fromOK && toOK {
			stat.ValidCount++
			pattern := [2]string{e.From, e.To}
			if !seenEdgePattern[pattern] {
				seenEdgePattern[pattern] = true
				uniqueValidPatterns++
			}
		} else {
			stat.DanglingCount++
			danglingEdges++
		}
	}

	uniqueEdgePatterns := make(map[[2]string]bool, len(edges))
	for _, e := range edges {
		uniqueEdgePatterns[[2]string{e.From, e.To}] = true
	}

	var orphaned uint64
	nodeTypeStats := make(map[string]*NodeTypeProblem)
	for _, id := range uniqueIDs {
		t := firstType[id]
		stat, ok := nodeTypeStats[t]
		if !ok {
			stat = &NodeTypeProblem{Type: t}
			nodeTypeStats[t] = stat
		}
		stat.TotalCount++
		if !endpointOf[id] {
			orphaned++
			stat.OrphanedCount++
		}
	}

	problematicNodeTypes := make([]NodeTypeProblem, 0, len(nodeTypeStats))
	for _, stat := range nodeTypeStats {
		stat.Percentage = safeDivide(float64(stat.OrphanedCount)*100, float64(stat.TotalCount))
		problematicNodeTypes = append(problematicNodeTypes, *stat)
	}
	sort.Slice(problematicNodeTypes, func(i, j int) bool {
		return problematicNodeTypes[i].Type < problematicNodeTypes[j].Type
	})

	problematicEdgePatterns := make([]EdgePatternProblem, 0, len(nodeTypeEdgeStats))
	for _, stat := range nodeTypeEdgeStats {
		total := stat.DanglingCount + stat.ValidCount
		stat.FailureRate = safeDivide(float64(stat.DanglingCount)*100, float64(total))
		problematicEdgePatterns = append(problematicEdgePatterns, *stat)
	}
	sort.Slice(problematicEdgePatterns, func(i, j int) bool {
		if problematicEdgePatterns[i].FromType != problematicEdgePatterns[j].FromType {
			return problematicEdgePatterns[i].FromType < problematicEdgePatterns[j].FromType
		}
		return problematicEdgePatterns[i].ToType < problematicEdgePatterns[j].ToType
	})

	totalNodeCount := uint64(len(nodes))
	validNodeCount := uint64(len(uniqueIDs))
	totalEdgeCount := uint64(len(edges))

	return ValidationResult{
		TotalNodeCount:          totalNodeCount,
		ValidNodeCount:          validNodeCount,
		OrphanedNodeCount:       orphaned,
		DuplicateNodeCount:      totalNodeCount - validNodeCount,
		TotalEdgeCount:          totalEdgeCount,
		ValidEdgeCount:          uint64(uniqueValidPatterns),
		DanglingEdgeCount:       danglingEdges,
		DuplicateEdgeCount:      totalEdgeCount - uint64(len(uniqueEdgePatterns)),
		NodeValidityRatio:       safeDivide(float64(validNodeCount), float64(totalNodeCount)),
		EdgeValidityRatio:       safeDivide(float64(uniqueValidPatterns), float64(totalEdgeCount)),
		ProblematicNodeTypes:    problematicNodeTypes,
		ProblematicEdgePatterns: problematicEdgePatterns,
	}
}
