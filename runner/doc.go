// Package runner ties maze generation, the environment, and the solvers
// into single reproducible runs and batched sweeps.
//
// What
//
//   - Spec: one run, fully parameterized (dimensions, seed, algorithm,
//     environment rewards). Identical Specs produce identical results.
//   - Run: carve, solve, time, and finalize one metrics record.
//   - SweepPlan / RunSweep: the cross product of sizes, seeds, and
//     algorithms, executed by a bounded worker pool.
//
// Determinism
//
//	Run is deterministic per Spec. RunSweep returns records in plan order
//	regardless of worker scheduling; only wall-clock and memory figures
//	vary between invocations.
package runner
