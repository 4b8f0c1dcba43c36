// Package aggregation rolls values up and down a directed acyclic graph:
// bottom-up sum, top-down equal distribution, weighted averages, grouped
// attribute dictionaries, temporal durations, and type-level transition
// statistics. Every rollup here assumes an acyclic dependency interpretation
// of its input; behavior on cyclic graphs is undefined and callers are
// expected to pre-validate with traversal.DetectCycles.
package aggregation
