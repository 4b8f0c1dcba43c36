// Package telemetry provides concrete progress.Sink implementations a host
// may wire into graphkit's kernels. Neither sink is imported by graphkit's
// own kernel packages: progress.Sink is the only contract they depend on,
// keeping logging/telemetry sinks an external collaborator while still
// giving a host a ready-made adapter onto OpenTelemetry tracing or
// Prometheus metrics.
package telemetry
