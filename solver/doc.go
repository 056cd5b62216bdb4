// Package solver implements the five maze solvers on top of mazenv's two
// views, all sharing one Result shape and one metrics contract.
//
// What
//
//   - BFS:  FIFO frontier over the graph view; shortest path guaranteed.
//   - DFS:  LIFO frontier, reverse-canonical pushes; no length guarantee.
//   - AStar: pqueue frontier ordered by f = g + h with a Manhattan or
//     Euclidean heuristic; shortest path guaranteed (both are admissible).
//   - ValueIteration:  asynchronous in-place Bellman sweeps to a greedy
//     policy, then forward simulation to a path.
//   - PolicyIteration: iterative evaluation + improvement to a stable
//     policy, same path derivation.
//
// Contracts
//
//   - Every solver mutates exactly one caller-supplied *metrics.Run across
//     its whole execution and returns a fresh *Result.
//   - "No path found" is an expected outcome, returned as an empty Path —
//     never an error. On a correctly generated perfect maze the search
//     solvers always reach the goal; the MDP solvers may legitimately fall
//     short at an iteration or simulation cap.
//   - Single-threaded, synchronous: a solver call runs to completion (or
//     cap) before returning. Reuse of an Env across calls is safe; reuse of
//     a Run is not.
//
// Determinism
//
//	Canonical neighbor order, row-major sweeps, fixed action order, and
//	FIFO priority tie-breaking make every trace reproducible for a given
//	maze.
//
// Errors
//
//   - ErrNilEnv, ErrNilMetrics, ErrUnknownHeuristic, ErrOptionViolation.
//   - pqueue.ErrEmptyQueue is consumed internally by AStar as its
//     loop-termination signal and never escapes.
package solver
