package aggregation

import "github.com/graphkit/graphkit/graphmodel"

func valueNode(id, typ string, value float64) graphmodel.Node {
	return graphmodel.Node{ID: id, Type: typ, Value: value}
}

func weightedNode(id, typ string, value, weight float64) graphmodel.Node {
	return graphmodel.Node{ID: id, Type: typ, Value: value, Weight: &weight}
}

func edge(from, to, typ string) graphmodel.Edge {
	return graphmodel.Edge{From: from, To: to, Type: typ}
}
