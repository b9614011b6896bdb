// Package sim orchestrates trace synthesis runs for the transaction workloads.
//
// # Reading Guide
//
// Start with these two files to understand a run end to end:
//   - rng.go: Partitioned random streams, one per transaction template
//   - runner.go: Run configuration, batch generation, and output encoding
//
// # Architecture
//
// The sim package owns run orchestration; the domain model lives in
// sub-packages:
//   - sim/workload/: Transaction templates, key domains, and samplers
//   - sim/trace/: The access-log data model and run summaries
//
// A Runner builds one workload.Generator from the configured key domains,
// derives one random stream per template from the run seed, and emits a
// batch of traces per template in either the historical text layout or
// JSON lines. Adding or removing templates from a run never changes the
// traces of the remaining templates, because each template draws only
// from its own stream.
package sim
