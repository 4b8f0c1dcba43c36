// Package graphmodel defines the node and edge records shared by every
// analysis kernel in graphkit (traversal, connectivity, paths, aggregation,
// flow, analysis), plus the enumerated result shapes those kernels return.
//
// Rather than a hierarchy of algorithm-specific record types (a value node,
// a flow node, a timed node, a weighted edge, and so on), graphkit keeps one
// Node and one Edge record, with the union of every variant's fields
// carried as optional (pointer or map) members. A kernel reads only the
// fields its algorithm cares about and ignores the rest.
package graphmodel
