package paths

import "github.com/graphkit/graphkit/graphmodel"

func node(id, typ string) graphmodel.Node {
	return graphmodel.Node{ID: id, Type: typ}
}

func edge(from, to, typ string) graphmodel.Edge {
	return graphmodel.Edge{From: from, To: to, Type: typ}
}

func weightedEdge(from, to string, w float64) graphmodel.Edge {
	return graphmodel.Edge{From: from, To: to, Type: "e", Weight: &w}
}
