// Package orchestrator wires the table → icon resolution → section build →
// renderer pipeline, providing dependency injection friendly helpers for
// consumers that prefer a single entry point.
package orchestrator
