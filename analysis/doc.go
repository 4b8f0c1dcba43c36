// Package analysis validates graph structural integrity, computes type and
// path statistics, and checks workflow-pattern completeness.
package analysis
