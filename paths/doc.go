// Package paths computes simple-path enumeration, weighted shortest paths,
// longest-duration critical paths over timed DAGs, and type-filtered
// subgraph extraction from source or target node types.
package paths
