package traversal

import "github.com/graphkit/graphkit/graphmodel"

func node(id, typ string) graphmodel.Node {
	return graphmodel.Node{ID: id, Type: typ}
}

func edge(from, to, typ string) graphmodel.Edge {
	return graphmodel.Edge{From: from, To: to, Type: typ}
}
