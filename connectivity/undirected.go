package connectivity

import "github.com/graphkit/graphkit/graphmodel"

// undirectedEdge is a single edge viewed without direction.
type undirectedEdge struct {
	a, b string
}

// buildUndirected returns, for every node id appearing in nodes, its
// neighbor list with both edge directions folded together. Self-loops and
// parallel edges are dropped so each undirected edge appears once — the
// deduplication bridge detection (§4.C4.3) requires.
func buildUndirected(nodes []graphmodel.Node, edges []graphmodel.Edge) (map[string][]string, []undirectedEdge) {
	adj := make(map[string][]string, len(nodes))
	seenNode := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if !seenNode[n.ID] {
			seenNode[n.ID] = true
			adj[n.ID] = nil
		}
	}

	seenPair := make(map[[2]string]bool, len(edges))
	var undirected []undirectedEdge

	for _, e := range edges {
		if e.From == e.To {
			continue // self-loop: never a bridge, excluded from pass-1 walk
		}

		key := [2]string{e.From, e.To}
		if e.To < e.From {
			key = [2]string{e.To, e.From}
		}
		if seenPair[key] {
			continue
		}
		seenPair[key] = true
		undirected = append(undirected, undirectedEdge{a: e.From, b: e.To})

		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	return adj, undirected
}
