// Package sweep implements the parameter sweep engine: spec validation,
// grid enumeration, model adaptation, trial execution and aggregation.
//
// The pipeline is strictly staged. A Spec is validated and expanded into
// an ordered set of GridPoints, the trial runner invokes the model once
// per (point, repetition) pair, and the aggregator reduces the collected
// trials into one result per (point, output variable). The resulting Run
// value is fully built in memory before any consumer performs I/O, so
// materialization and rendering can be retried without re-running trials.
package sweep
