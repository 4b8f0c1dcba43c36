// Package flow checks conservation of value across a flow graph and
// computes per-node volume balances.
//
// Unlike a max-flow solver, this package never routes or augments
// anything: every procedure here is a single O(|V|+|E|) pass that reads
// node values and edge weights/volumes as given and reports whether they
// balance, per node and in aggregate.
package flow
