// Package graphkit is a library of directed-graph analysis procedures:
// traversal (BFS/DFS, tracked variants, topological sort, cycle detection,
// ancestor/descendant closure), connectivity (components, strongly
// connected components, bridges, articulation points, dynamic
// reachability, strong-subgraph extraction), paths (all simple paths,
// Dijkstra shortest path, critical path, typed subgraph extraction),
// aggregation (bottom-up, top-down, weighted, grouped, type-level, and
// temporal rollups), flow (conservation and volume checks), and
// structural analysis (validation, type statistics, path statistics,
// workflow-pattern completeness).
//
// Each procedure lives in its own subpackage (traversal, connectivity,
// paths, aggregation, flow, analysis) and operates on the shared node and
// edge records in graphmodel. None of them hold state between calls. Some
// call another kernel's public entry point (connectivity's dynamic
// reachability uses traversal's ancestor/descendant closure, top-down
// aggregation and critical path use traversal's topological sort, analysis
// uses traversal and aggregation); a host picks the procedures it needs and
// wires them directly, or drives all of them uniformly through registry.
package graphkit
