// Package pqueue provides the min-priority queue used by A*.
//
// What
//
//   - Queue[T comparable]: binary heap of (priority, sequence, item) records
//     plus a side map from item to its current best-known priority.
//   - Push only enqueues strictly better priorities; superseded entries stay
//     in the heap but are logically stale.
//   - Pop filters stale entries by best-known-priority equality, breaking
//     priority ties in strict insertion order.
//
// Why
//
//	Trading space (duplicate stale entries) for simplicity avoids an
//	explicit in-place decrease-key while keeping Pop correct: a stale entry
//	can never surface because its priority no longer matches the item's
//	best-known one.
//
// Complexity (n = physical entries)
//
//   - Push: O(log n)
//   - Pop:  amortized O(log n); each stale entry is discarded exactly once
//   - Len:  O(1)
package pqueue
