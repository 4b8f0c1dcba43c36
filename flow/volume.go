package flow

import (
	"github.com/graphkit/graphkit/graphmodel"
	"github.com/graphkit/graphkit/progress"
)

// NodeVolume is one node's volume balance.
type NodeVolume struct {
	ID         string
	VolumeIn   float64
	VolumeOut  float64
	ActualLoss float64
}

// VolumeResult is the output of VolumeFlow.
type VolumeResult struct {
	Nodes             []NodeVolume
	TotalInputVolume  float64
	TotalOutputVolume float64
	TotalSystemLoss   float64
}

// VolumeFlow computes per-node volume balance and system-wide totals.
// actual_loss is volume_in - volume_out uniformly: a
// source (no incoming edges) naturally lands on -volume_out, a sink (no
// outgoing edges) on volume_in. total_input_volume sums the outgoing
// volume of every node with no incoming edge; total_output_volume sums the
// incoming volume of every node with no outgoing edge; total_system_loss
// is their difference.
func VolumeFlow(nodes []graphmodel.Node, edges []graphmodel.Edge, sink progress.Sink) VolumeResult {
	reporter := progress.NewReporter(sink, "graph_volume_flow")

	volumeIn := make(map[string]float64, len(nodes))
	volumeOut := make(map[string]float64, len(nodes))
	hasIncoming := make(map[string]bool, len(nodes))
	hasOutgoing := make(map[string]bool, len(nodes))

	for _, e := range edges {
		reporter.Tick(1)
		v := e.EffectiveVolume()
		volumeIn[e.To] += v
		volumeOut[e.From] += v
		hasIncoming[e.To] = true
		hasOutgoing[e.From] = true
	}

	result := VolumeResult{Nodes: make([]NodeVolume, 0, len(nodes))}
	for _, n := range nodes {
		vIn := volumeIn[n.ID]
		vOut := volumeOut[n.ID]
		result.Nodes = append(result.Nodes, NodeVolume{
			ID:         n.ID,
			VolumeIn:   vIn,
			VolumeOut:  vOut,
			ActualLoss: vIn - vOut,
		})

		if !hasIncoming[n.ID] {
			result.TotalInputVolume += vOut
		}
		if !hasOutgoing[n.ID] {
			result.TotalOutputVolume += vIn
		}
	}
	result.TotalSystemLoss = result.TotalInputVolume - result.TotalOutputVolume

	return result
}
