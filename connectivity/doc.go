// Package connectivity computes undirected connected components, strongly
// connected components, bridges, articulation points, reachability
// restricted to active edges, and strong-subgraph extraction over the
// graphmodel record types.
//
// Every traversal here is iterative: DFS frontiers are explicit stacks of
// frame structs carrying resume position, following the same discipline as
// the traversal package, so a million-node graph never touches the native
// call stack.
package connectivity
