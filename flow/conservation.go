package flow

import (
	"math"

	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// conservationTolerance is the absolute tolerance allowed between a node's
// value plus inflow and its outflow plus loss.
const conservationTolerance = 1e-3

// ConservationResult is the output of CheckConservation.
type ConservationResult struct {
	IsConserved bool
	Violations  []string
}

// CheckConservation verifies, for every node, that
// value + total_inflow ≈ total_outflow + total_loss within a tolerance of
// 1e-3. Per edge, actual_flow = weight*(1-loss/100) and
// loss_amount = weight*loss/100; weight and loss both default through
// graphmodel.Edge.EffectiveWeight/EffectiveLoss. Violations are reported in
// input node-list order.
func CheckConservation(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) ConservationResult {
	reporter := progress.NewReporter(sink, "graph_flow_conservation")

	inflow := make(map[string]float64, len(nodes))
	outflow := make(map[string]float64, len(nodes))
	lossOut := make(map[string]float64, len(nodes))

	for _, e := range edges {
		reporter.Tick(1)
		w := e.EffectiveWeight()
		lossFrac := e.EffectiveLoss() / 100
		actual := w * (1 - lossFrac)
		lossAmount := w * lossFrac

		inflow[e.To] += actual
		outflow[e.From] += actual
		lossOut[e.From] += lossAmount
	}

	var violations []string
	for _, n := range nodes {
		lhs := n.Value + inflow[n.ID]
		rhs := outflow[n.ID] + lossOut[n.ID]
		if math.Abs(lhs-rhs) > conservationTolerance {
			violations = append(violations, n.ID)
		}
	}

	return ConservationResult{IsConserved: len(violations) == 0, Violations: violations}
}
